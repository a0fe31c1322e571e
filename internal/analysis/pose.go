package analysis

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"FATIGUE_MONITOR/go-backend/internal/geometry"
)

// poseModelPoints is the canonical 3D face model, in millimetres, matched
// one-to-one against the pose landmark subset: nose tip, chin, left eye
// outer corner, right eye outer corner, left mouth corner, right mouth
// corner. The model frame has Y up and Z toward the camera.
var poseModelPoints = [6][3]float64{
	{0, 0, 0},
	{0, -330, -65},
	{-225, 170, -135},
	{225, 170, -135},
	{-150, -150, -125},
	{150, -150, -125},
}

const (
	poseMaxIter  = 50
	poseResidTol = 1e-6
	poseStepTol  = 1e-8
)

// rodrigues converts an axis-angle rotation vector to a 3x3 rotation matrix.
func rodrigues(r [3]float64) *mat.Dense {
	theta := math.Sqrt(r[0]*r[0] + r[1]*r[1] + r[2]*r[2])
	R := mat.NewDense(3, 3, nil)
	if theta < 1e-12 {
		R.Set(0, 0, 1)
		R.Set(1, 1, 1)
		R.Set(2, 2, 1)
		return R
	}
	kx, ky, kz := r[0]/theta, r[1]/theta, r[2]/theta
	c, s := math.Cos(theta), math.Sin(theta)
	v := 1 - c
	R.Set(0, 0, c+kx*kx*v)
	R.Set(0, 1, kx*ky*v-kz*s)
	R.Set(0, 2, kx*kz*v+ky*s)
	R.Set(1, 0, ky*kx*v+kz*s)
	R.Set(1, 1, c+ky*ky*v)
	R.Set(1, 2, ky*kz*v-kx*s)
	R.Set(2, 0, kz*kx*v-ky*s)
	R.Set(2, 1, kz*ky*v+kx*s)
	R.Set(2, 2, c+kz*kz*v)
	return R
}

// projectModel projects the canonical model through the pose parameters
// params = (rx, ry, rz, tx, ty, tz) with a pinhole camera of focal length
// focal and principal point (cx, cy). Returns false when any point lands
// behind or on the camera plane.
func projectModel(params [6]float64, focal, cx, cy float64) ([6]geometry.Point2, bool) {
	R := rodrigues([3]float64{params[0], params[1], params[2]})
	var out [6]geometry.Point2
	for i, m := range poseModelPoints {
		px := R.At(0, 0)*m[0] + R.At(0, 1)*m[1] + R.At(0, 2)*m[2] + params[3]
		py := R.At(1, 0)*m[0] + R.At(1, 1)*m[1] + R.At(1, 2)*m[2] + params[4]
		pz := R.At(2, 0)*m[0] + R.At(2, 1)*m[1] + R.At(2, 2)*m[2] + params[5]
		if pz < 1e-6 {
			return out, false
		}
		out[i] = geometry.Point2{X: focal*px/pz + cx, Y: focal*py/pz + cy}
	}
	return out, true
}

func poseResiduals(params [6]float64, observed [6]geometry.Point2, focal, cx, cy float64) (*mat.VecDense, bool) {
	proj, ok := projectModel(params, focal, cx, cy)
	if !ok {
		return nil, false
	}
	r := mat.NewVecDense(12, nil)
	for i := 0; i < 6; i++ {
		r.SetVec(2*i, proj[i].X-observed[i].X)
		r.SetVec(2*i+1, proj[i].Y-observed[i].Y)
	}
	return r, true
}

// solvePnP fits the 6-DOF pose of the canonical model to the observed pixel
// points via Levenberg-Marquardt with a forward-difference Jacobian. It
// returns the rotation vector, translation vector and whether the solve
// converged. The initial guess has the model flipped to face the camera.
func solvePnP(observed [6]geometry.Point2, focal, cx, cy float64) (rvec, tvec [3]float64, ok bool) {
	params := [6]float64{math.Pi, 0, 0, 0, 0, 1000}

	resid, valid := poseResiduals(params, observed, focal, cx, cy)
	if !valid {
		return rvec, tvec, false
	}
	cost := mat.Dot(resid, resid)
	if math.IsNaN(cost) || math.IsInf(cost, 0) {
		return rvec, tvec, false
	}
	lambda := 1e-3

	for iter := 0; iter < poseMaxIter; iter++ {
		// Forward-difference Jacobian of the 12 residuals wrt the 6 params.
		J := mat.NewDense(12, 6, nil)
		degenerate := false
		for j := 0; j < 6; j++ {
			h := 1e-6 * math.Max(1, math.Abs(params[j]))
			bumped := params
			bumped[j] += h
			rb, v := poseResiduals(bumped, observed, focal, cx, cy)
			if !v {
				degenerate = true
				break
			}
			for i := 0; i < 12; i++ {
				J.Set(i, j, (rb.AtVec(i)-resid.AtVec(i))/h)
			}
		}
		if degenerate {
			return rvec, tvec, false
		}

		var jtj mat.Dense
		jtj.Mul(J.T(), J)
		var jtr mat.VecDense
		jtr.MulVec(J.T(), resid)

		// Damped normal equations; on a failed or non-improving step the
		// damping grows and the step is retried next iteration.
		A := mat.NewDense(6, 6, nil)
		A.Copy(&jtj)
		for d := 0; d < 6; d++ {
			A.Set(d, d, A.At(d, d)+lambda*jtj.At(d, d)+1e-12)
		}
		var delta mat.VecDense
		if err := delta.SolveVec(A, &jtr); err != nil {
			lambda *= 10
			if lambda > 1e10 {
				return rvec, tvec, false
			}
			continue
		}

		trial := params
		stepNorm := 0.0
		for j := 0; j < 6; j++ {
			trial[j] -= delta.AtVec(j)
			stepNorm += delta.AtVec(j) * delta.AtVec(j)
		}

		trialResid, v := poseResiduals(trial, observed, focal, cx, cy)
		if v {
			trialCost := mat.Dot(trialResid, trialResid)
			if trialCost < cost {
				params = trial
				resid = trialResid
				improvement := cost - trialCost
				cost = trialCost
				lambda = math.Max(lambda/10, 1e-12)
				if cost < poseResidTol || stepNorm < poseStepTol || improvement < poseResidTol {
					break
				}
				continue
			}
		}
		lambda *= 10
		if lambda > 1e10 {
			break
		}
	}

	// A solve that still projects the points tens of pixels off never
	// converged on anything usable.
	if !(cost < 1e4) {
		return rvec, tvec, false
	}
	rvec = [3]float64{params[0], params[1], params[2]}
	tvec = [3]float64{params[3], params[4], params[5]}
	return rvec, tvec, true
}

// eulerAngles extracts Tait-Bryan head angles in degrees from a rotation
// vector. The rotation is taken relative to the camera-facing base flip
// diag(1,-1,-1) so a frontal face reads as (0, 0, 0); positive pitch is
// head down, positive yaw is turned toward the camera's right.
func eulerAngles(rvec [3]float64) (pitch, yaw, roll float64) {
	R := rodrigues(rvec)

	// Rrel = R0ᵀ·R with R0 = diag(1,-1,-1): negate rows 1 and 2.
	rel := [3][3]float64{
		{R.At(0, 0), R.At(0, 1), R.At(0, 2)},
		{-R.At(1, 0), -R.At(1, 1), -R.At(1, 2)},
		{-R.At(2, 0), -R.At(2, 1), -R.At(2, 2)},
	}

	// Decompose Rrel = Rx(pitch)·Ry(yaw)·Rz(roll).
	sy := rel[0][2]
	if sy > 1 {
		sy = 1
	} else if sy < -1 {
		sy = -1
	}
	yaw = math.Asin(sy)

	const gimbal = 1 - 1e-9
	if math.Abs(sy) < gimbal {
		pitch = math.Atan2(-rel[1][2], rel[2][2])
		roll = math.Atan2(-rel[0][1], rel[0][0])
	} else {
		// Gimbal lock: pitch and roll share an axis, attribute to pitch.
		pitch = math.Atan2(rel[2][1], rel[1][1])
		roll = 0
	}

	const toDeg = 180 / math.Pi
	return pitch * toDeg, yaw * toDeg, roll * toDeg
}
