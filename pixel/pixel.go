// Package pixel provides the pixel formats and raster buffers consumed by the
// resize pipeline. Convolution accumulates in floating point through Vector4;
// a native pixel type only has to convert itself to and from that form.
package pixel

// Vector4 is a 4-component floating point color used as the accumulation type
// during convolution. It is never persisted.
type Vector4 struct {
	R, G, B, A float64
}

// Add returns the component-wise sum of v and w.
func (v Vector4) Add(w Vector4) Vector4 {
	return Vector4{R: v.R + w.R, G: v.G + w.G, B: v.B + w.B, A: v.A + w.A}
}

// Scale returns v with every component multiplied by k.
func (v Vector4) Scale(k float64) Vector4 {
	return Vector4{R: v.R * k, G: v.G * k, B: v.B * k, A: v.A * k}
}

// Pixel is the capability a native pixel format must provide: conversion to
// the floating accumulation form and packing back from it. FromVector4 is
// called on the zero value of P and owns any clamping and rounding policy.
type Pixel[P any] interface {
	ToVector4() Vector4
	FromVector4(Vector4) P
}
