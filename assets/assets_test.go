package assets

import "testing"

func TestFrameCountHint(t *testing.T) {
	tests := []struct {
		name string
		file string
		want int
	}{
		{"underscore separator", "attack_6.png", 6},
		{"dash separator", "idle-12.png", 12},
		{"no separator", "walk8.png", 8},
		{"at separator", "sheet@4.png", 4},
		{"f prefix", "runf10.png", 10},
		{"bare digits", "8.png", 8},
		{"multi digit", "explode_24.png", 24},
		{"no digits", "idle.png", 0},
		{"digits not trailing", "2player_idle.png", 0},
		{"no extension", "taunt_6", 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FrameCountHint(tt.file); got != tt.want {
				t.Errorf("FrameCountHint(%q) = %d, want %d", tt.file, got, tt.want)
			}
		})
	}
}

func TestSpriteSheetGrid(t *testing.T) {
	tests := []struct {
		name         string
		imgW, imgH   int
		tileW, tileH int
		wantCols     int
		wantRows     int
	}{
		{"single row strip", 640, 80, 80, 80, 8, 1},
		{"two rows", 320, 160, 80, 80, 4, 2},
		{"smaller than one tile", 40, 40, 80, 80, 1, 1},
		{"partial trailing column", 200, 80, 80, 80, 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSpriteSheet("sheet.png", tt.tileW, tt.tileH)
			s.resolveGrid(tt.imgW, tt.imgH)
			if s.columns != tt.wantCols || s.rows != tt.wantRows {
				t.Errorf("grid = %dx%d, want %dx%d", s.columns, s.rows, tt.wantCols, tt.wantRows)
			}
		})
	}
}

func TestSpriteSheetNotReadyDefaults(t *testing.T) {
	s := NewSpriteSheet("idle_8.png", 80, 80)

	if s.Ready() {
		t.Fatal("fresh sheet should not be ready")
	}
	if s.Columns() != 0 || s.Rows() != 0 {
		t.Errorf("unready sheet grid = %dx%d, want 0x0", s.Columns(), s.Rows())
	}
	if s.Frame(0) != nil {
		t.Error("unready sheet should return nil frames")
	}
	if s.FrameCountHint() != 8 {
		t.Errorf("hint = %d, want 8 (parsed at construction)", s.FrameCountHint())
	}
}
