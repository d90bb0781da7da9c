package paths

import "testing"

func TestSysDirFormat(t *testing.T) {
	l := Layout{SDCard: "/mnt/sdcard", Platform: "rg35xx"}
	got := l.SysDir("gba", "mgba")
	want := "/mnt/sdcard/.userdata/rg35xx/gba-mgba"
	if got != want {
		t.Errorf("SysDir() = %q, want %q", got, want)
	}
}

func TestSRAMPathFormat(t *testing.T) {
	l := Layout{SDCard: "/mnt/sdcard", Platform: "rg35xx"}
	got := l.SRAMPath("gba", "Pokemon Emerald (USA)")
	want := "/mnt/sdcard/Saves/gba/Pokemon Emerald (USA).sav"
	if got != want {
		t.Errorf("SRAMPath() = %q, want %q", got, want)
	}
}

func TestStatePathFormat(t *testing.T) {
	l := Layout{SDCard: "/mnt/sdcard", Platform: "rg35xx"}
	got := l.StatePath("gba", "mgba", "Pokemon Emerald (USA)", 8)
	want := "/mnt/sdcard/.userdata/rg35xx/gba-mgba/Pokemon Emerald (USA).st8"
	if got != want {
		t.Errorf("StatePath() = %q, want %q", got, want)
	}
}
