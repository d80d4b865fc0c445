// 指示: miu200521358
package mmath

import "math"

// DegToRad は度をラジアンへ変換する。
func DegToRad(degree float64) float64 {
	return degree * math.Pi / 180.0
}

// RadToDeg はラジアンを度へ変換する。
func RadToDeg(radian float64) float64 {
	return radian * 180.0 / math.Pi
}

// SnapToZero は絶対値が許容誤差未満の値を0へ丸める。
func SnapToZero(value float64, epsilon float64) float64 {
	if math.Abs(value) < epsilon {
		return 0.0
	}
	return value
}
