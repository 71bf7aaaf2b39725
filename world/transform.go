// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package world

import (
	"cogentcore.org/core/math32"
)

// Transform places an object in the world: local points are scaled,
// then rotated, then translated.
type Transform struct {

	// position of the local origin in world coordinates
	Pos math32.Vector3

	// rotation; a nil (zero) Quat is treated as the identity
	Rot math32.Quat

	// scale factors; a zero vector is treated as (1, 1, 1)
	Scale math32.Vector3
}

// Defaults sets the identity rotation and unit scale where unset.
func (tr *Transform) Defaults() {
	if tr.Rot.IsNil() {
		tr.Rot.SetIdentity()
	}
	if tr.Scale == (math32.Vector3{}) {
		tr.Scale.Set(1, 1, 1)
	}
}

func (tr *Transform) rot() math32.Quat {
	q := tr.Rot
	if q.IsNil() {
		q.SetIdentity()
	}
	return q
}

func (tr *Transform) scale() math32.Vector3 {
	if tr.Scale == (math32.Vector3{}) {
		return math32.Vec3(1, 1, 1)
	}
	return tr.Scale
}

// SetAxisRotation sets the rotation to the given angle in degrees
// around the axis x, y, z.
func (tr *Transform) SetAxisRotation(x, y, z, angle float32) {
	tr.Rot.SetFromAxisAngle(math32.Vec3(x, y, z).Normal(), math32.DegToRad(angle))
}

// ToWorld converts a local point to world coordinates.
func (tr *Transform) ToWorld(p math32.Vector3) math32.Vector3 {
	return p.Mul(tr.scale()).MulQuat(tr.rot()).Add(tr.Pos)
}

// ToLocal converts a world point to local coordinates.
func (tr *Transform) ToLocal(p math32.Vector3) math32.Vector3 {
	inv := tr.rot()
	inv.SetInverse()
	return p.Sub(tr.Pos).MulQuat(inv).Div(tr.scale())
}

// DirToLocal converts a world direction to local coordinates,
// without normalizing, so that ray parameters are the same in both spaces.
func (tr *Transform) DirToLocal(d math32.Vector3) math32.Vector3 {
	inv := tr.rot()
	inv.SetInverse()
	return d.MulQuat(inv).Div(tr.scale())
}

// NormalToWorld converts a local surface normal to a unit world normal.
func (tr *Transform) NormalToWorld(n math32.Vector3) math32.Vector3 {
	return n.Div(tr.scale()).MulQuat(tr.rot()).Normal()
}

// RayToLocal converts a world ray to local coordinates.
func (tr *Transform) RayToLocal(ray math32.Ray) math32.Ray {
	return math32.Ray{Origin: tr.ToLocal(ray.Origin), Dir: tr.DirToLocal(ray.Dir)}
}
