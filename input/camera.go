// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package input

import (
	"cogentcore.org/core/math32"
)

// Camera is a perspective camera used to turn screen positions
// into world rays.
type Camera struct {

	// Pos is the eye position.
	Pos math32.Vector3

	// Target is the point the camera looks at.
	Target math32.Vector3

	// Up is the approximate up direction.
	Up math32.Vector3

	// FOV is the vertical field of view in degrees.
	FOV float32 `default:"30"`

	// Size is the viewport size in pixels.
	Size math32.Vector2
}

// Defaults sets the default camera: 5 units out on +Z looking at
// the origin.
func (cm *Camera) Defaults() {
	cm.Pos.Set(0, 0, 5)
	cm.Target = math32.Vector3{}
	cm.Up.Set(0, 1, 0)
	cm.FOV = 30
	cm.Size.Set(800, 600)
}

// NewCamera returns a camera with default values.
func NewCamera() *Camera {
	cm := &Camera{}
	cm.Defaults()
	return cm
}

// ScreenRay returns the world ray through the given pixel position,
// with the origin at the eye and a unit direction. Pixel (0, 0) is the
// top left of the viewport.
func (cm *Camera) ScreenRay(pos math32.Vector2) math32.Ray {
	fwd := cm.Target.Sub(cm.Pos).Normal()
	right := fwd.Cross(cm.Up).Normal()
	up := right.Cross(fwd)

	aspect := float32(1)
	if cm.Size.Y > 0 {
		aspect = cm.Size.X / cm.Size.Y
	}
	half := math32.Tan(math32.DegToRad(cm.FOV) / 2)
	ndcX, ndcY := float32(0), float32(0)
	if cm.Size.X > 0 && cm.Size.Y > 0 {
		ndcX = 2*pos.X/cm.Size.X - 1
		ndcY = 1 - 2*pos.Y/cm.Size.Y
	}
	dir := fwd.Add(right.MulScalar(ndcX * half * aspect)).Add(up.MulScalar(ndcY * half))
	return math32.Ray{Origin: cm.Pos, Dir: dir.Normal()}
}

// ScreenPos returns the pixel position of a world point in front
// of the camera. It is the inverse of [Camera.ScreenRay].
func (cm *Camera) ScreenPos(p math32.Vector3) (math32.Vector2, bool) {
	fwd := cm.Target.Sub(cm.Pos).Normal()
	right := fwd.Cross(cm.Up).Normal()
	up := right.Cross(fwd)

	d := p.Sub(cm.Pos)
	depth := d.Dot(fwd)
	if depth <= 0 || cm.Size.X <= 0 || cm.Size.Y <= 0 {
		return math32.Vector2{}, false
	}
	aspect := cm.Size.X / cm.Size.Y
	half := math32.Tan(math32.DegToRad(cm.FOV) / 2)
	ndcX := d.Dot(right) / (depth * half * aspect)
	ndcY := d.Dot(up) / (depth * half)
	return math32.Vec2((ndcX+1)*cm.Size.X/2, (1-ndcY)*cm.Size.Y/2), true
}
