package definitions

// Builtin returns the demo tour over the sample dashboard shipped with the
// tour player. Hosts normally author their own YAML instead.
func Builtin() *Tour {
	return &Tour{
		Name:        "dashboard-intro",
		Description: "A first walk through the dashboard layout",
		Autoplay:    true,
		Source:      "builtin",
		Steps: []Step{
			{
				Element:     "#sidebar",
				Title:       "Navigation",
				Description: "Switch between views here. Each entry has a keyboard shortcut.",
				Position:    "right",
				Duration:    "6s",
			},
			{
				Element:     "#chart",
				Title:       "Activity chart",
				Description: "Live throughput for the selected service.",
				Position:    "bottom",
				Duration:    "6s",
			},
			{
				Element:     "#log",
				Title:       "Event log",
				Description: "Recent events, newest first. Press enter on a row for details.",
				Position:    "top",
				Duration:    "6s",
			},
			{
				Element:     "#statusbar",
				Title:       "Status bar",
				Description: "Connection state and pending work live here. Take your time - this step waits for you.",
				Position:    "top",
			},
		},
	}
}
