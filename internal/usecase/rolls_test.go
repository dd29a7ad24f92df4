package usecase

import "testing"

func TestExpandRolls(t *testing.T) {
	t.Run("expands quantity rolls with cyclic names", func(t *testing.T) {
		rolls := ExpandRolls(4, 22, []string{"A", "B", "C", "D"}, false)

		if len(rolls) != 4 {
			t.Fatalf("len(rolls) = %d, want 4", len(rolls))
		}
		for i, roll := range rolls {
			if roll.RollNumber != i+1 {
				t.Errorf("rolls[%d].RollNumber = %d, want %d", i, roll.RollNumber, i+1)
			}
			if roll.OnHand != 22 || roll.MaxArea != 22 {
				t.Errorf("rolls[%d] onHand/maxArea = %v/%v, want 22/22", i, roll.OnHand, roll.MaxArea)
			}
			want := string(rune('A' + i))
			if roll.PrintName == nil || *roll.PrintName != want {
				t.Errorf("rolls[%d].PrintName = %v, want %q", i, roll.PrintName, want)
			}
			if roll.PairedRollNumber != nil {
				t.Errorf("rolls[%d].PairedRollNumber = %v, want nil", i, roll.PairedRollNumber)
			}
		}
	})

	t.Run("names wrap when fewer than quantity", func(t *testing.T) {
		rolls := ExpandRolls(4, 10, []string{"X", "Y"}, true)

		wantNames := []string{"X", "Y", "X", "Y"}
		for i, roll := range rolls {
			if roll.PrintName == nil || *roll.PrintName != wantNames[i] {
				t.Errorf("rolls[%d].PrintName = %v, want %q", i, roll.PrintName, wantNames[i])
			}
			if !roll.HasReverseSide {
				t.Errorf("rolls[%d].HasReverseSide = false, want true", i)
			}
		}
	})

	t.Run("no names leaves print names null", func(t *testing.T) {
		rolls := ExpandRolls(2, 5, nil, false)

		for i, roll := range rolls {
			if roll.PrintName != nil {
				t.Errorf("rolls[%d].PrintName = %v, want nil", i, roll.PrintName)
			}
		}
	})

	t.Run("non-positive quantity yields nil", func(t *testing.T) {
		if rolls := ExpandRolls(0, 5, nil, false); rolls != nil {
			t.Errorf("rolls = %v, want nil", rolls)
		}
		if rolls := ExpandRolls(-3, 5, nil, false); rolls != nil {
			t.Errorf("rolls = %v, want nil", rolls)
		}
	})
}
