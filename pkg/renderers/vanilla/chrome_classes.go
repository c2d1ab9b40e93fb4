package vanilla

// ChromeClass is a typed identifier for semantic chrome CSS classes.
type ChromeClass string

const (
	ClassSurface  ChromeClass = "formrepeat-surface"
	ClassInstance ChromeClass = "formrepeat-instance"
	ClassControls ChromeClass = "formrepeat-controls"
	ClassAdd      ChromeClass = "formrepeat-add"
	ClassTitle    ChromeClass = "formrepeat-title"
)

// Default*Class values are applied when RenderOptions.ChromeClasses overrides are empty.
const (
	DefaultSurfaceClass  = string(ClassSurface)
	DefaultInstanceClass = string(ClassInstance)
	DefaultControlsClass = string(ClassControls)
	DefaultAddClass      = string(ClassAdd)
)
