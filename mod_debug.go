package probe

// DebugModule wires the instrumentation layer into an App: the facade and
// its parts become resources, the per-tick hooks run as staged systems.
// Update runs in PreRender (after the host's physics systems have committed
// transforms), EndFrame in PostRender.
type DebugModule struct {
	// Enabled is the master flag; when false the layer installs but stays
	// inert for the lifetime of the app.
	Enabled bool

	Scene    SceneGraph
	Settings RenderSettings
	Physics  PhysicsSource

	// Hotkeys registers the keyboard toggles (Ctrl+S stats, Ctrl+P physics
	// debug, Ctrl+G panel). Requires InputModule to be installed first.
	Hotkeys bool

	SampleWindow int
	SweepPeriod  int
}

func (m DebugModule) Install(app *App, cmd *Commands) {
	debug := NewDebug(m.Scene, m.Settings, m.Physics, DebugConfig{
		Enabled:      m.Enabled,
		SampleWindow: m.SampleWindow,
		SweepPeriod:  m.SweepPeriod,
		Logger:       app.Logger(),
	})

	cmd.AddResources(
		debug,
		debug.State(),
		debug.Modes(),
		debug.Stats(),
		debug.Panel(),
		debug.Visualizer(),
	)

	if m.Hotkeys {
		app.UseSystem(
			System(debugHotkeySystem).
				InStage(PreUpdate).
				RunAlways(),
		)
	}
	app.UseSystem(
		System(debugUpdateSystem).
			InStage(PreRender).
			RunAlways(),
	)
	app.UseSystem(
		System(debugEndFrameSystem).
			InStage(PostRender).
			RunAlways(),
	)
}

func debugUpdateSystem(debug *Debug) {
	debug.Update()
}

func debugEndFrameSystem(debug *Debug) {
	debug.EndFrame()
}

// debugToggles decodes the hotkey chords from one input snapshot: modifier
// held plus a designated letter on its press edge. Pure over the snapshot so
// the mapping is testable without a window.
func debugToggles(input *Input) (stats, physicsDebug, panel bool) {
	if !input.Pressed[KeyControl] {
		return false, false, false
	}
	return input.JustPressed[KeyS], input.JustPressed[KeyP], input.JustPressed[KeyG]
}

func debugHotkeySystem(input *Input, modes *ModeController, state *DebugState) {
	if !state.MasterEnabled {
		return
	}

	stats, physicsDebug, panel := debugToggles(input)
	if stats {
		modes.ToggleStats()
	}
	if physicsDebug {
		modes.TogglePhysicsDebug()
	}
	if panel {
		modes.TogglePanel()
	}
}
