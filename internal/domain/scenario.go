package domain

import "time"

// Scenario is a named parameter set, usually stored as a YAML file inside
// the workspace.
type Scenario struct {
	Name   string
	Params Params
	Axes   AxisOverride
}

// AxisOverride replaces individual axis bounds; nil fields keep the base value.
type AxisOverride struct {
	XMin *float64
	XMax *float64
	YMin *float64
	YMax *float64
}

// Apply returns base with the set fields replaced.
func (o AxisOverride) Apply(base AxisBounds) AxisBounds {
	if o.XMin != nil {
		base.XMin = *o.XMin
	}
	if o.XMax != nil {
		base.XMax = *o.XMax
	}
	if o.YMin != nil {
		base.YMin = *o.YMin
	}
	if o.YMax != nil {
		base.YMax = *o.YMax
	}
	return base
}

// IsZero reports whether no field is overridden.
func (o AxisOverride) IsZero() bool {
	return o.XMin == nil && o.XMax == nil && o.YMin == nil && o.YMax == nil
}

// ScenarioRef is a lightweight reference to a scenario file on disk.
type ScenarioRef struct {
	Name string
	Path string
}

// WorkspaceSpec describes where a workspace should be created.
type WorkspaceSpec struct {
	Root string
}

// ExportArtifact is a series handed to an export store.
type ExportArtifact struct {
	Scenario  string
	CreatedAt time.Time
	Series    Series
}
