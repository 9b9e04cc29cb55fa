package input

import (
	"testing"
	"time"
)

func TestMapToIntent_Bindings(t *testing.T) {
	cases := []struct {
		code string
		want Action
	}{
		{"arrow_up", ActionMoveNorth},
		{"k", ActionMoveNorth},
		{"j", ActionMoveSouth},
		{"h", ActionMoveWest},
		{"l", ActionMoveEast},
		{"y", ActionMoveNorthWest},
		{"u", ActionMoveNorthEast},
		{"b", ActionMoveSouthWest},
		{"n", ActionMoveSouthEast},
		{".", ActionWait},
		{",", ActionPickup},
		{"o", ActionExplore},
		{"G", ActionTravel},
		{">", ActionTravel},
		{"escape", ActionCancel},
		{"space", ActionCancel},
		{"M", ActionDumpMap},
		{"q", ActionQuit},
		{"interrupt", ActionQuit},
		{"Z", ActionNone},
		{"", ActionNone},
	}
	for _, tc := range cases {
		intent := MapToIntent(DebouncedInput{Device: DeviceTerminal, Code: tc.code})
		if intent.Action != tc.want {
			t.Errorf("MapToIntent(%q) = %v, want %v", tc.code, ActionName(intent.Action), ActionName(tc.want))
		}
	}
}

func TestNewDebouncedInput_KeepsDeviceAndCode(t *testing.T) {
	raw := RawInput{Device: DeviceKeyboard, Code: "h", Timestamp: time.Now()}
	deb := NewDebouncedInput(raw)
	if deb.Device != DeviceKeyboard || deb.Code != "h" {
		t.Errorf("debounced = %+v, want device and code preserved", deb)
	}
}

func TestMoveDelta_AllEightDirections(t *testing.T) {
	moves := []Action{
		ActionMoveNorth, ActionMoveNorthEast, ActionMoveEast, ActionMoveSouthEast,
		ActionMoveSouth, ActionMoveSouthWest, ActionMoveWest, ActionMoveNorthWest,
	}
	seen := map[[2]int]bool{}
	for _, a := range moves {
		dRow, dCol, ok := MoveDelta(a)
		if !ok {
			t.Errorf("MoveDelta(%s) not a movement", ActionName(a))
			continue
		}
		if dRow < -1 || dRow > 1 || dCol < -1 || dCol > 1 || (dRow == 0 && dCol == 0) {
			t.Errorf("MoveDelta(%s) = (%d,%d), not a unit step", ActionName(a), dRow, dCol)
		}
		if seen[[2]int{dRow, dCol}] {
			t.Errorf("MoveDelta(%s) repeats offset (%d,%d)", ActionName(a), dRow, dCol)
		}
		seen[[2]int{dRow, dCol}] = true
	}

	if _, _, ok := MoveDelta(ActionWait); ok {
		t.Error("MoveDelta(Wait) claims to be a movement")
	}
	if _, _, ok := MoveDelta(ActionNone); ok {
		t.Error("MoveDelta(None) claims to be a movement")
	}
}

func TestGetBindingsByAction(t *testing.T) {
	byAction := GetBindingsByAction()

	north := byAction[ActionMoveNorth]
	if len(north) != 2 {
		t.Fatalf("ActionMoveNorth bindings = %v, want arrow_up and k", north)
	}
	// Sorted for stable display
	if north[0] != "arrow_up" || north[1] != "k" {
		t.Errorf("ActionMoveNorth bindings = %v, want sorted [arrow_up k]", north)
	}

	if len(byAction[ActionQuit]) != 2 {
		t.Errorf("ActionQuit bindings = %v, want interrupt and q", byAction[ActionQuit])
	}
}
