package rules

import "testing"

func TestNext(t *testing.T) {
	for neighbors := 0; neighbors <= 8; neighbors++ {
		wantAlive := neighbors == 2 || neighbors == 3
		if got := Next(true, neighbors); got != wantAlive {
			t.Errorf("Next(alive, %d) = %v, want %v", neighbors, got, wantAlive)
		}
		wantBorn := neighbors == 3
		if got := Next(false, neighbors); got != wantBorn {
			t.Errorf("Next(dead, %d) = %v, want %v", neighbors, got, wantBorn)
		}
	}
}
