// SPDX-License-Identifier: MIT

// Package camera provides a perspective or orthographic camera with a
// position, a unit-quaternion orientation and lazily rebuilt matrices.
//
// 🚀 What is camera?
//
//	A small stateful helper over package cx. The view matrix is rebuilt only
//	after the pose changes and the projection only after its parameters
//	change; repeated reads return the cached matrix.
//
// ✨ Key features:
//   - New(opts...) with WithPerspective, WithOrthographic, WithPosition,
//     WithRotation.
//   - Pose: SetPosition, Move (delta in camera space), SetRotation, Rotate.
//   - Basis vectors: Forward (-Z), Right (+X), Up (+Y) in world space.
//   - Matrices: View, Projection, ViewProjection (P·V).
//   - Projections use the right-handed, [-1, 1] depth convention unless
//     WithDepthRange selects [0, 1].
//
// All methods are safe for concurrent use.
//
// ⚙️ Usage:
//
//	cam := camera.New(camera.WithPerspective(cx.Radians(60), 16.0/9.0, 0.1, 100))
//	cam.SetPosition(cx.Vec3Of(0, 2, 10))
//	cam.Rotate(cx.Vec3UnitY, cx.Radians(15))
//	mvp := cam.ViewProjection().Mul(model)
package camera
