package probe

// DebugState holds the facility flags. MasterEnabled is set once at startup
// (build mode, env, URL flag) and never toggled at runtime; every facility
// flag stays false while it is off.
type DebugState struct {
	MasterEnabled bool

	StatsEnabled        bool
	PhysicsDebugEnabled bool
	PanelEnabled        bool
}

// ModeController is the state machine over the three facility flags. It is
// decoupled from any input mechanism: the host translates raw input events
// into the Set*/Toggle* entry points.
type ModeController struct {
	state      *DebugState
	visualizer *PhysicsVisualizer
	log        Logger
}

func NewModeController(state *DebugState, visualizer *PhysicsVisualizer, log Logger) *ModeController {
	if log == nil {
		log = NewNopLogger()
	}
	return &ModeController{
		state:      state,
		visualizer: visualizer,
		log:        log,
	}
}

func (m *ModeController) SetStats(enabled bool) {
	if !m.state.MasterEnabled {
		return
	}
	m.state.StatsEnabled = enabled
	m.log.Debugf("stats overlay enabled=%v", enabled)
}

// SetPhysicsDebug flips the flag and mirrors it onto the group node's
// visibility. Turning it off hides the proxies without destroying them;
// turning it back on resumes reconciliation on the next tick.
func (m *ModeController) SetPhysicsDebug(enabled bool) {
	if !m.state.MasterEnabled {
		return
	}
	m.state.PhysicsDebugEnabled = enabled
	if m.visualizer != nil {
		m.visualizer.SetVisible(enabled)
	}
	m.log.Debugf("physics debug enabled=%v", enabled)
}

func (m *ModeController) SetPanel(enabled bool) {
	if !m.state.MasterEnabled {
		return
	}
	m.state.PanelEnabled = enabled
	m.log.Debugf("parameter panel enabled=%v", enabled)
}

func (m *ModeController) ToggleStats() {
	m.SetStats(!m.state.StatsEnabled)
}

func (m *ModeController) TogglePhysicsDebug() {
	m.SetPhysicsDebug(!m.state.PhysicsDebugEnabled)
}

func (m *ModeController) TogglePanel() {
	m.SetPanel(!m.state.PanelEnabled)
}
