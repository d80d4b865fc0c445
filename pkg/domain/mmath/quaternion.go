// 指示: miu200521358
package mmath

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Quaternion は回転を表す。
type Quaternion struct {
	mgl64.Quat
}

// NewQuaternion は単位クォータニオンを生成する。
func NewQuaternion() Quaternion {
	return Quaternion{Quat: mgl64.QuatIdent()}
}

// NewQuaternionFromRadians はXYZオイラー角（ラジアン）から回転を生成する。
func NewQuaternionFromRadians(radX float64, radY float64, radZ float64) Quaternion {
	return Quaternion{Quat: mgl64.AnglesToQuat(radX, radY, radZ, mgl64.XYZ)}
}

// NewQuaternionFromDegrees はXYZオイラー角（度）から回転を生成する。
func NewQuaternionFromDegrees(degX float64, degY float64, degZ float64) Quaternion {
	return NewQuaternionFromRadians(DegToRad(degX), DegToRad(degY), DegToRad(degZ))
}

// NewQuaternionByValues は成分指定で回転を生成する。
func NewQuaternionByValues(x float64, y float64, z float64, w float64) Quaternion {
	return Quaternion{Quat: mgl64.Quat{W: w, V: mgl64.Vec3{x, y, z}}}
}

// Muled は回転の合成結果を返す。
func (q Quaternion) Muled(other Quaternion) Quaternion {
	return Quaternion{Quat: q.Quat.Mul(other.Quat)}
}

// Inverted は逆回転を返す。
func (q Quaternion) Inverted() Quaternion {
	return Quaternion{Quat: q.Quat.Inverse()}
}

// MulVec3 はベクトルへ回転を適用した結果を返す。
func (q Quaternion) MulVec3(v Vec3) Vec3 {
	rotated := q.Quat.Rotate(mgl64.Vec3{v.X, v.Y, v.Z})
	return NewVec3(rotated.X(), rotated.Y(), rotated.Z())
}
