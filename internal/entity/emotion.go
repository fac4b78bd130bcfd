package entity

import (
	"fmt"
	"strings"
	"time"
)

// EmotionBound is the absolute limit of every emotion dimension.
const EmotionBound = 9.99

// Dimension names one axis of the emotion vector.
type Dimension string

const (
	DimensionPleasantness Dimension = "pleasantness"
	DimensionAttention    Dimension = "attention"
	DimensionSensitivity  Dimension = "sensitivity"
	DimensionAptitude     Dimension = "aptitude"
)

// Dimensions lists every axis in storage order.
var Dimensions = [...]Dimension{
	DimensionPleasantness,
	DimensionAttention,
	DimensionSensitivity,
	DimensionAptitude,
}

// ParseDimension resolves a dimension by name, case-insensitively.
func ParseDimension(name string) (Dimension, error) {
	d := Dimension(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Dimensions {
		if d == known {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDimension, name)
}

// EmotionVector is the affect state of a reference.
type EmotionVector struct {
	Pleasantness float64
	Attention    float64
	Sensitivity  float64
	Aptitude     float64
}

// Get returns the value of dimension d.
func (v EmotionVector) Get(d Dimension) float64 {
	switch d {
	case DimensionPleasantness:
		return v.Pleasantness
	case DimensionAttention:
		return v.Attention
	case DimensionSensitivity:
		return v.Sensitivity
	case DimensionAptitude:
		return v.Aptitude
	default:
		return 0
	}
}

// Set stores val in dimension d. Unknown dimensions are ignored.
func (v *EmotionVector) Set(d Dimension, val float64) {
	switch d {
	case DimensionPleasantness:
		v.Pleasantness = val
	case DimensionAttention:
		v.Attention = val
	case DimensionSensitivity:
		v.Sensitivity = val
	case DimensionAptitude:
		v.Aptitude = val
	}
}

// Apply adds every dimension present in delta and clamps the result to
// [-EmotionBound, EmotionBound]. Dimensions absent from delta keep their value.
func (v EmotionVector) Apply(delta EmotionDelta) EmotionVector {
	out := v
	for _, d := range Dimensions {
		inc, ok := delta.Get(d)
		if !ok {
			continue
		}
		out.Set(d, ClampEmotion(v.Get(d)+inc))
	}
	return out
}

// InBounds reports whether every dimension lies within the emotion bound.
func (v EmotionVector) InBounds() bool {
	for _, d := range Dimensions {
		if x := v.Get(d); x < -EmotionBound || x > EmotionBound {
			return false
		}
	}
	return true
}

// Clamp limits every dimension to the emotion bound.
func (v EmotionVector) Clamp() EmotionVector {
	out := v
	for _, d := range Dimensions {
		out.Set(d, ClampEmotion(v.Get(d)))
	}
	return out
}

// ClampEmotion limits x to [-EmotionBound, EmotionBound].
func ClampEmotion(x float64) float64 {
	switch {
	case x > EmotionBound:
		return EmotionBound
	case x < -EmotionBound:
		return -EmotionBound
	default:
		return x
	}
}

// EmotionDelta carries optional increments per dimension.
type EmotionDelta struct {
	Pleasantness *float64
	Attention    *float64
	Sensitivity  *float64
	Aptitude     *float64
}

// Get returns the increment for d and whether it was provided.
func (d EmotionDelta) Get(dim Dimension) (float64, bool) {
	var p *float64
	switch dim {
	case DimensionPleasantness:
		p = d.Pleasantness
	case DimensionAttention:
		p = d.Attention
	case DimensionSensitivity:
		p = d.Sensitivity
	case DimensionAptitude:
		p = d.Aptitude
	}
	if p == nil {
		return 0, false
	}
	return *p, true
}

// With returns a copy of d with dimension dim set to inc.
func (d EmotionDelta) With(dim Dimension, inc float64) EmotionDelta {
	switch dim {
	case DimensionPleasantness:
		d.Pleasantness = &inc
	case DimensionAttention:
		d.Attention = &inc
	case DimensionSensitivity:
		d.Sensitivity = &inc
	case DimensionAptitude:
		d.Aptitude = &inc
	}
	return d
}

// IsZero reports whether no dimension is provided.
func (d EmotionDelta) IsZero() bool {
	return d.Pleasantness == nil && d.Attention == nil && d.Sensitivity == nil && d.Aptitude == nil
}

// Emotion is the persisted emotion record of a reference.
type Emotion struct {
	ID        int64
	Reference string
	EmotionVector
	CreatedAt time.Time
	UpdatedAt time.Time
}
