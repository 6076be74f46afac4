package core

import "math"

// ONB is an orthonormal basis built around a w axis, used to transform
// locally sampled directions into world space
type ONB struct {
	U, V, W Vec3
}

// NewONB builds an orthonormal basis whose W axis points along n
func NewONB(n Vec3) ONB {
	w := n.Normalize()

	// Pick a helper axis that is not parallel to w
	var a Vec3
	if math.Abs(w.X) > 0.9 {
		a = NewVec3(0, 1, 0)
	} else {
		a = NewVec3(1, 0, 0)
	}

	v := w.Cross(a).Normalize()
	u := w.Cross(v)

	return ONB{U: u, V: v, W: w}
}

// Local transforms a vector expressed in this basis into world space
func (b ONB) Local(a Vec3) Vec3 {
	return b.U.Multiply(a.X).Add(b.V.Multiply(a.Y)).Add(b.W.Multiply(a.Z))
}
