package shimmer

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestBuffer_Text(t *testing.T) {
	type tc struct {
		x, y  int
		text  string
		clip  Rect
		want  string
		wantN int
	}

	tests := map[string]tc{
		"simple": {
			x: 1, y: 0, text: "abc", clip: NewRect(0, 0, 6, 1),
			want: " abc  ", wantN: 3,
		},
		"clipped right": {
			x: 4, y: 0, text: "abcdef", clip: NewRect(0, 0, 6, 1),
			want: "    ab", wantN: 2,
		},
		"clipped left": {
			x: 0, y: 0, text: "abcd", clip: NewRect(2, 0, 4, 1),
			want: "  cd  ", wantN: 4,
		},
		"wide runes": {
			x: 0, y: 0, text: "日本", clip: NewRect(0, 0, 6, 1),
			want: "日本  ", wantN: 4,
		},
		"outside row": {
			x: 0, y: 0, text: "abc", clip: NewRect(0, 1, 6, 1),
			want: "      ", wantN: 0,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			buf := NewBuffer(6, 2)
			n := NewCanvas(buf).Clip(tt.clip).Text(tt.x, tt.y, tt.text, NewStyle())
			if got := buf.Line(0); got != tt.want {
				t.Errorf("Line(0) = %q, want %q", got, tt.want)
			}
			if n != tt.wantN {
				t.Errorf("Text() consumed %d, want %d", n, tt.wantN)
			}
		})
	}
}

func TestCanvas_PaintKeepsRunes(t *testing.T) {
	buf := NewBuffer(4, 1)
	cv := NewCanvas(buf)
	cv.Text(0, 0, "abcd", NewStyle().Foreground("#ff0000"))

	clipped := cv.Clip(NewRect(1, 0, 2, 1))
	for x := 0; x < 4; x++ {
		clipped.Paint(x, 0, NewStyle().Background("#00ff00"))
	}

	if got := buf.Line(0); got != "abcd" {
		t.Errorf("Line(0) = %q, want runes unchanged", got)
	}
	want := []lipgloss.Color{"", "#00ff00", "#00ff00", ""}
	for x, bg := range want {
		c := buf.Cell(x, 0)
		if c.Style.Bg != bg {
			t.Errorf("cell %d bg = %q, want %q", x, c.Style.Bg, bg)
		}
		if c.Style.Fg != "#ff0000" {
			t.Errorf("cell %d fg = %q, want foreground kept", x, c.Style.Fg)
		}
	}
}

func TestBuffer_OutOfBounds(t *testing.T) {
	buf := NewBuffer(2, 2)
	buf.SetCell(5, 5, NewCell('x', NewStyle()))
	buf.Paint(-1, 0, NewStyle().Background("#000000"))

	if got := buf.Cell(5, 5); got != (Cell{}) {
		t.Errorf("Cell(5, 5) = %+v, want zero", got)
	}
	if got := buf.Line(3); got != "" {
		t.Errorf("Line(3) = %q, want empty", got)
	}
}

func TestBuffer_StringPlainWithoutStyles(t *testing.T) {
	buf := NewBuffer(3, 2)
	NewCanvas(buf).Text(0, 1, "hi", NewStyle())
	if got := buf.String(); got != "   \nhi " {
		t.Errorf("String() = %q", got)
	}
}

func TestBuffer_StringGroupsRuns(t *testing.T) {
	buf := NewBuffer(4, 1)
	cv := NewCanvas(buf)
	cv.Fill(NewRect(0, 0, 2, 1), NewStyle().Background("#eeeeee"))
	cv.Text(2, 0, "ok", NewStyle())

	got := buf.String()
	if !strings.HasSuffix(got, "ok") {
		t.Errorf("String() = %q, want unstyled tail", got)
	}
	if !strings.Contains(got, "  ") {
		t.Errorf("String() = %q, want styled run of two blanks", got)
	}
}
