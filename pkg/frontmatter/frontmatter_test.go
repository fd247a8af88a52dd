package frontmatter

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		want     *Header
		wantBody string
		wantErr  bool
	}{
		{
			name: "full header",
			content: `---
day: 5
title: Supply Stacks
source: example
part_one: "CMZ"
part_two: "MCD"
---
    [D]    
[N] [C]    
`,
			want: &Header{
				Day:     5,
				Title:   "Supply Stacks",
				Source:  "example",
				PartOne: "CMZ",
				PartTwo: "MCD",
			},
			wantBody: "    [D]    \n[N] [C]    \n",
		},
		{
			name:     "no header",
			content:  "30373\n25512\n",
			want:     nil,
			wantBody: "30373\n25512\n",
		},
		{
			name:     "crlf line endings",
			content:  "---\r\nday: 6\r\n---\r\nabc\r\n",
			want:     &Header{Day: 6},
			wantBody: "abc\n",
		},
		{
			name: "invalid yaml",
			content: `---
day: [invalid
---
body`,
			want: nil,
			wantBody: `---
day: [invalid
---
body`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, body, err := Parse(tt.content)
			if (err != nil) != tt.wantErr {
				t.Errorf("Parse() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse() got = %+v, want %+v", got, tt.want)
			}
			if body != tt.wantBody {
				t.Errorf("Parse() body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}

func TestBuild(t *testing.T) {
	h := &Header{Day: 7, Title: "No Space Left on Device", PartOne: "95437", PartTwo: "24933642"}

	want := `---
day: 7
title: No Space Left on Device
part_one: "95437"
part_two: "24933642"
---`
	if got := Build(h); got != want {
		t.Errorf("Build() = %q, want %q", got, want)
	}
}

func TestRoundTrip(t *testing.T) {
	h := &Header{Day: 2, Title: "Rock: Paper, Scissors", Source: "example", PartOne: "15", PartTwo: "12"}
	body := "A Y\nB X\nC Z\n"

	got, gotBody, err := Parse(BuildContent(h, body))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !reflect.DeepEqual(got, h) {
		t.Errorf("Parse() got = %+v, want %+v", got, h)
	}
	if gotBody != body {
		t.Errorf("Parse() body = %q, want %q", gotBody, body)
	}
}

func TestHasExpectations(t *testing.T) {
	var missing *Header
	if missing.HasExpectations() {
		t.Error("nil header should have no expectations")
	}
	if (&Header{Day: 1}).HasExpectations() {
		t.Error("header without answers should have no expectations")
	}
	if !(&Header{Day: 1, PartTwo: "45000"}).HasExpectations() {
		t.Error("header with an answer should have expectations")
	}
}
