package env

import "testing"

func TestChainReachesGoal(t *testing.T) {
	c := NewChain(5)
	s, err := c.Reset()
	if err != nil {
		t.Fatal(err)
	}
	if s.Hash() != "0" {
		t.Fatalf("expected start state 0, got %s", s.Hash())
	}

	for i := 0; i < 3; i++ {
		next, reward, done, err := c.Step(moveRight)
		if err != nil {
			t.Fatal(err)
		}
		if done {
			t.Fatalf("episode ended early at step %d", i)
		}
		if reward != -c.StepPenalty {
			t.Errorf("step %d: expected step penalty, got %f", i, reward)
		}
		_ = next
	}

	next, reward, done, err := c.Step(moveRight)
	if err != nil {
		t.Fatal(err)
	}
	if !done {
		t.Error("expected episode to end at the last cell")
	}
	if reward != c.GoalReward {
		t.Errorf("expected goal reward %f, got %f", c.GoalReward, reward)
	}
	if next.Hash() != "4" {
		t.Errorf("expected final state 4, got %s", next.Hash())
	}
}

func TestChainLeftClampsAtStart(t *testing.T) {
	c := NewChain(5)
	if _, err := c.Reset(); err != nil {
		t.Fatal(err)
	}

	next, _, done, err := c.Step(moveLeft)
	if err != nil {
		t.Fatal(err)
	}
	if done || next.Hash() != "0" {
		t.Errorf("expected to stay at 0, got %s (done=%v)", next.Hash(), done)
	}
}

func TestChainRejectsUnknownAction(t *testing.T) {
	c := NewChain(5)
	if _, err := c.Reset(); err != nil {
		t.Fatal(err)
	}
	if _, _, _, err := c.Step(move("jump")); err == nil {
		t.Error("expected an error for an unknown action")
	}
}

func TestChainActionSpaceStable(t *testing.T) {
	c := NewChain(5)
	a := c.ActionSpace()
	b := c.ActionSpace()
	if len(a) != 2 || len(b) != 2 {
		t.Fatalf("expected 2 actions, got %d and %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Hash() != b[i].Hash() {
			t.Errorf("action space order changed at %d", i)
		}
	}
}

func TestGridWorldReachesGoal(t *testing.T) {
	g := NewGridWorld(2, 2)
	if _, err := g.Reset(); err != nil {
		t.Fatal(err)
	}

	next, reward, done, err := g.Step(moveRight)
	if err != nil {
		t.Fatal(err)
	}
	if done || next.Hash() != "0,1" {
		t.Fatalf("expected 0,1 not done, got %s (done=%v)", next.Hash(), done)
	}
	if reward != -g.StepPenalty {
		t.Errorf("expected step penalty, got %f", reward)
	}

	next, reward, done, err = g.Step(moveDown)
	if err != nil {
		t.Fatal(err)
	}
	if !done || next.Hash() != "1,1" {
		t.Errorf("expected goal at 1,1 done, got %s (done=%v)", next.Hash(), done)
	}
	if reward != g.GoalReward {
		t.Errorf("expected goal reward, got %f", reward)
	}
}

func TestGridWorldWallsClamp(t *testing.T) {
	g := NewGridWorld(3, 3)
	if _, err := g.Reset(); err != nil {
		t.Fatal(err)
	}

	next, _, _, err := g.Step(moveUp)
	if err != nil {
		t.Fatal(err)
	}
	if next.Hash() != "0,0" {
		t.Errorf("expected to stay at 0,0, got %s", next.Hash())
	}
	next, _, _, err = g.Step(moveLeft)
	if err != nil {
		t.Fatal(err)
	}
	if next.Hash() != "0,0" {
		t.Errorf("expected to stay at 0,0, got %s", next.Hash())
	}
}
