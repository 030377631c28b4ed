package probe

// Debug is the composition root of the instrumentation layer. The host game
// loop calls Update once per tick before rendering and EndFrame once after
// rendering completes; both are cheap no-ops while the master flag is off.
//
// Everything here is frame-synchronous and runs on the calling goroutine. If
// the host schedules physics and rendering on separate threads, Update must
// run after the physics step has committed transforms for the tick and
// before the renderer reads scene-graph state.
type Debug struct {
	state      *DebugState
	modes      *ModeController
	stats      *FrameStats
	panel      *Panel
	visualizer *PhysicsVisualizer
}

// DebugConfig carries construction options; the zero value gives sane
// defaults.
type DebugConfig struct {
	// Enabled is the master flag, fixed for the lifetime of the Debug.
	Enabled bool
	// SampleWindow is the frame-stats rolling window size (default 120).
	SampleWindow int
	// SweepPeriod is the proxy-cache eviction interval in frames
	// (default DefaultSweepPeriod; negative disables eviction).
	SweepPeriod int
	Logger      Logger
}

func NewDebug(scene SceneGraph, settings RenderSettings, physics PhysicsSource, cfg DebugConfig) *Debug {
	log := cfg.Logger
	if log == nil {
		log = NewNopLogger()
	}

	state := &DebugState{MasterEnabled: cfg.Enabled}

	visualizer := NewPhysicsVisualizer(scene, physics)
	switch {
	case cfg.SweepPeriod < 0:
		visualizer.SetSweepPeriod(0)
	case cfg.SweepPeriod > 0:
		visualizer.SetSweepPeriod(uint64(cfg.SweepPeriod))
	}
	// Hidden until physics debug is switched on.
	visualizer.SetVisible(false)

	panel := NewPanel("debug")
	panel.Bind(StandardBindings(settings, physics)...)

	return &Debug{
		state:      state,
		modes:      NewModeController(state, visualizer, log),
		stats:      NewFrameStats(cfg.SampleWindow),
		panel:      panel,
		visualizer: visualizer,
	}
}

// Update opens the frame-timing window and reconciles the physics
// visualization, each gated by its facility flag. Call before the frame is
// rendered.
func (d *Debug) Update() {
	if !d.state.MasterEnabled {
		return
	}
	if d.state.StatsEnabled {
		d.stats.Begin()
	}
	if d.state.PhysicsDebugEnabled {
		d.visualizer.Reconcile()
	}
}

// EndFrame closes the frame-timing window, producing one sample. Call after
// rendering completes and before the next Update.
func (d *Debug) EndFrame() {
	if !d.state.MasterEnabled || !d.state.StatsEnabled {
		return
	}
	d.stats.End()
}

func (d *Debug) SetStats(enabled bool)        { d.modes.SetStats(enabled) }
func (d *Debug) SetPhysicsDebug(enabled bool) { d.modes.SetPhysicsDebug(enabled) }
func (d *Debug) SetPanel(enabled bool)        { d.modes.SetPanel(enabled) }

func (d *Debug) State() *DebugState             { return d.state }
func (d *Debug) Modes() *ModeController         { return d.modes }
func (d *Debug) Stats() *FrameStats             { return d.stats }
func (d *Debug) Panel() *Panel                  { return d.panel }
func (d *Debug) Visualizer() *PhysicsVisualizer { return d.visualizer }
