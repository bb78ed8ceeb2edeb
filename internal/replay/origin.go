package replay

type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Transform is applied to the full-screen viewer at the first frame of the
// enter animation and animated back to identity.
type Transform struct {
	TranslateX float64 `json:"translate_x"`
	TranslateY float64 `json:"translate_y"`
	ScaleX     float64 `json:"scale_x"`
	ScaleY     float64 `json:"scale_y"`
}

func IdentityTransform() Transform {
	return Transform{ScaleX: 1, ScaleY: 1}
}

// InitialTransform maps the viewport onto the thumbnail the viewer was opened
// from, so the viewer appears to grow out of it. Without a usable origin the
// viewer simply starts full size.
func InitialTransform(origin Rect, viewport Size) Transform {
	if origin.Width <= 0 || origin.Height <= 0 || viewport.Width <= 0 || viewport.Height <= 0 {
		return IdentityTransform()
	}
	return Transform{
		TranslateX: origin.X + origin.Width/2 - viewport.Width/2,
		TranslateY: origin.Y + origin.Height/2 - viewport.Height/2,
		ScaleX:     origin.Width / viewport.Width,
		ScaleY:     origin.Height / viewport.Height,
	}
}
