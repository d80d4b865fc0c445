// 指示: miu200521358
// Package mmath は変換処理で使う数学プリミティブを提供する。
package mmath

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vec3 は3次元ベクトルを表す。
type Vec3 struct {
	r3.Vec
}

// よく使うベクトル定数一覧。
var (
	ZERO_VEC3       = Vec3{}
	ONE_VEC3        = Vec3{Vec: r3.Vec{X: 1, Y: 1, Z: 1}}
	UNIT_X_VEC3     = Vec3{Vec: r3.Vec{X: 1}}
	UNIT_Y_VEC3     = Vec3{Vec: r3.Vec{Y: 1}}
	UNIT_Z_VEC3     = Vec3{Vec: r3.Vec{Z: 1}}
	UNIT_X_NEG_VEC3 = Vec3{Vec: r3.Vec{X: -1}}
	UNIT_Y_NEG_VEC3 = Vec3{Vec: r3.Vec{Y: -1}}
	UNIT_Z_NEG_VEC3 = Vec3{Vec: r3.Vec{Z: -1}}
)

// NewVec3 は成分指定でベクトルを生成する。
func NewVec3(x float64, y float64, z float64) Vec3 {
	return Vec3{Vec: r3.Vec{X: x, Y: y, Z: z}}
}

// Added は加算結果を返す。
func (v Vec3) Added(other Vec3) Vec3 {
	return Vec3{Vec: r3.Add(v.Vec, other.Vec)}
}

// Subed は減算結果を返す。
func (v Vec3) Subed(other Vec3) Vec3 {
	return Vec3{Vec: r3.Sub(v.Vec, other.Vec)}
}

// MuledScalar はスカラー倍した結果を返す。
func (v Vec3) MuledScalar(scale float64) Vec3 {
	return Vec3{Vec: r3.Scale(scale, v.Vec)}
}

// Dot は内積を返す。
func (v Vec3) Dot(other Vec3) float64 {
	return r3.Dot(v.Vec, other.Vec)
}

// Cross は外積を返す。
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{Vec: r3.Cross(v.Vec, other.Vec)}
}

// Length はベクトル長を返す。
func (v Vec3) Length() float64 {
	return r3.Norm(v.Vec)
}

// Normalized は正規化結果を返す。長さゼロの場合はゼロベクトルを返す。
func (v Vec3) Normalized() Vec3 {
	length := r3.Norm(v.Vec)
	if length == 0 {
		return ZERO_VEC3
	}
	return Vec3{Vec: r3.Scale(1.0/length, v.Vec)}
}

// NearEquals は各成分が許容誤差内で一致するか判定する。
func (v Vec3) NearEquals(other Vec3, epsilon float64) bool {
	return math.Abs(v.X-other.X) <= epsilon &&
		math.Abs(v.Y-other.Y) <= epsilon &&
		math.Abs(v.Z-other.Z) <= epsilon
}

// Snapped は絶対値が許容誤差未満の成分を0へ丸めた結果を返す。
func (v Vec3) Snapped(epsilon float64) Vec3 {
	return NewVec3(SnapToZero(v.X, epsilon), SnapToZero(v.Y, epsilon), SnapToZero(v.Z, epsilon))
}
