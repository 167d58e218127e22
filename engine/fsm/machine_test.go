package fsm

import "testing"

const (
	stateIdle StateID = iota + 1
	stateRunning
)

const (
	trigStart Trigger = iota + 1
	trigStop
)

type recorder struct {
	log []string
}

func buildMachine() *Machine[*recorder] {
	m := NewMachine[*recorder]()
	m.AddState(stateIdle, "Idle").
		Enter(func(r *recorder) { r.log = append(r.log, "enter idle") }).
		Exit(func(r *recorder) { r.log = append(r.log, "exit idle") })
	m.AddState(stateRunning, "Running").
		Enter(func(r *recorder) { r.log = append(r.log, "enter running") })

	m.AddTransition(stateIdle, Transition[*recorder]{Trigger: trigStart, TargetID: stateRunning})
	m.AddTransition(stateRunning, Transition[*recorder]{Trigger: trigStop, TargetID: stateIdle})
	return m
}

func TestMachineInitRunsEntry(t *testing.T) {
	m := buildMachine()
	r := &recorder{}

	if err := m.Init(r, stateIdle); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if m.Active() != stateIdle || m.ActiveName() != "Idle" {
		t.Errorf("active = %d (%s), want Idle", m.Active(), m.ActiveName())
	}
	if len(r.log) != 1 || r.log[0] != "enter idle" {
		t.Errorf("log = %v", r.log)
	}
}

func TestMachineInitUnknownState(t *testing.T) {
	m := buildMachine()
	if err := m.Init(&recorder{}, StateID(99)); err == nil {
		t.Error("expected error for unknown initial state")
	}
}

func TestMachineInitDanglingTransition(t *testing.T) {
	m := buildMachine()
	m.AddTransition(stateRunning, Transition[*recorder]{Trigger: trigStart, TargetID: StateID(42)})
	if err := m.Init(&recorder{}, stateIdle); err == nil {
		t.Error("expected error for transition to missing state")
	}
}

func TestMachineFireRunsExitThenEnter(t *testing.T) {
	m := buildMachine()
	r := &recorder{}
	_ = m.Init(r, stateIdle)

	if !m.Fire(r, trigStart) {
		t.Fatal("Start should fire from Idle")
	}
	if m.Active() != stateRunning {
		t.Errorf("active = %s, want Running", m.ActiveName())
	}
	if !m.Fire(r, trigStop) {
		t.Fatal("Stop should fire from Running")
	}

	want := []string{"enter idle", "exit idle", "enter running", "enter idle"}
	if len(r.log) != len(want) {
		t.Fatalf("log = %v, want %v", r.log, want)
	}
	for i := range want {
		if r.log[i] != want[i] {
			t.Errorf("log[%d] = %q, want %q", i, r.log[i], want[i])
		}
	}
}

func TestMachineUnhandledTrigger(t *testing.T) {
	m := buildMachine()
	r := &recorder{}
	_ = m.Init(r, stateIdle)

	if m.Fire(r, trigStop) {
		t.Error("Idle has no Stop transition")
	}
}
