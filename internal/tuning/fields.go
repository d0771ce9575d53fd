package tuning

// Scalar describes one slider-editable float field.
type Scalar struct {
	Key   string
	Label string
	Min   float32
	Max   float32
	Help  string
	Field func(*Values) *float32
}

func (s Scalar) Clamp(x float32) float32 {
	return clamp(x, s.Min, s.Max)
}

// ColorField describes one color-editable field.
type ColorField struct {
	Key   string
	Label string
	Help  string
	Field func(*Values) *Color
}

var scalars = []Scalar{
	{
		Key: "drag_c", Label: "drag", Min: 0, Max: 0.3,
		Help:  "Linear drag coefficient, multiplied by speed squared.",
		Field: func(v *Values) *float32 { return &v.DragC },
	},
	{
		Key: "avg_boat_height", Label: "boat height", Min: 0, Max: 2,
		Help:  "Maximum draft; buoyancy stops growing past this depth.",
		Field: func(v *Values) *float32 { return &v.AvgBoatHeight },
	},
	{
		Key: "floating_c", Label: "floating", Min: 0, Max: 100,
		Help:  "Upward force per unit of submersion depth.",
		Field: func(v *Values) *float32 { return &v.FloatingC },
	},
	{
		Key: "drag_ang_c", Label: "angular drag", Min: 0, Max: 5,
		Help:  "Angular velocity damping per second.",
		Field: func(v *Values) *float32 { return &v.DragAngC },
	},
	{
		Key: "light_dir_lum", Label: "sun", Min: 0, Max: 2,
		Help:  "Directional light intensity.",
		Field: func(v *Values) *float32 { return &v.LightDirLum },
	},
	{
		Key: "light_amb_lum", Label: "ambient", Min: 0, Max: 2,
		Help:  "Ambient light intensity.",
		Field: func(v *Values) *float32 { return &v.LightAmbLum },
	},
}

var colors = []ColorField{
	{
		Key: "light_dir_color", Label: "sun color",
		Help:  "Directional light color.",
		Field: func(v *Values) *Color { return &v.LightDirColor },
	},
	{
		Key: "light_amb_color", Label: "ambient color",
		Help:  "Ambient light color.",
		Field: func(v *Values) *Color { return &v.LightAmbColor },
	},
}

// Scalars lists the float tunables in panel order.
func Scalars() []Scalar {
	return scalars
}

// Colors lists the color tunables in panel order.
func Colors() []ColorField {
	return colors
}
