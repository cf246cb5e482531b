// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Int16ToFloat32 scales a signed 16-bit PCM value into [-1, 1).
func Int16ToFloat32(v int16) float32 {
	return float32(v) / 32768.0
}

// IntToFloat32 scales a PCM value of the given bit depth into [-1, 1).
// 8-bit PCM is unsigned (centered on 128), all other depths are signed.
func IntToFloat32(v int, bitDepth int) float32 {
	if bitDepth == 8 {
		return float32(v-128) / 128.0
	}
	return float32(float64(v) / math.Exp2(float64(bitDepth-1)))
}

// BitsToFloat32 reinterprets a 32-bit IEEE float pattern stored in an int.
func BitsToFloat32(v int) float32 {
	return math.Float32frombits(uint32(int32(v)))
}

// Float32ToBits stores the IEEE bit pattern of x in an int, the inverse of
// BitsToFloat32.
func Float32ToBits(x float32) int {
	return int(int32(math.Float32bits(x)))
}
