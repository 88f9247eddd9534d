package funcfmt

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"testing"
)

// testFormatters mirrors the table used throughout the rendering tests:
// "foo" and "bar" wrap the context in their own name, "nodata" always
// reports a missing value.
func testFormatters() FormatMap[string] {
	return FormatMap[string]{
		"foo": func(s *string) (string, error) { return *s + " foo " + *s, nil },
		"bar": func(s *string) (string, error) { return *s + " bar " + *s, nil },
		"nodata": func(s *string) (string, error) {
			return "", fmt.Errorf("%w for %q", ErrNoValue, *s)
		},
	}
}

func TestRender(t *testing.T) {
	fm := testFormatters()

	tests := []struct {
		name     string
		template string
		data     string
		want     string
	}{
		{
			name:     "literal only renders verbatim",
			template: "just text, no formatters",
			data:     "x",
			want:     "just text, no formatters",
		},
		{
			name:     "multi-byte literals around placeholders",
			template: "一{foo}二{bar}",
			data:     "bar",
			want:     "一bar foo bar二bar bar bar",
		},
		{
			name:     "adjacent placeholders",
			template: "{foo}{bar}",
			data:     "x",
			want:     "x foo xx bar x",
		},
		{
			name:     "escaped braces render literally",
			template: "一{foo}二{{bar}}",
			data:     "bar",
			want:     "一bar foo bar二{bar}",
		},
		{
			name:     "repeated placeholder renders twice",
			template: "{foo} and {foo}",
			data:     "x",
			want:     "x foo x and x foo x",
		},
		{
			name:     "empty template",
			template: "",
			data:     "x",
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pieces, err := fm.ToFormatPieces(tt.template)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got, err := pieces.Render(&tt.data)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRender_OrderFollowsTemplate(t *testing.T) {
	fm := FormatMap[struct{}]{
		"a": func(*struct{}) (string, error) { return "[A]", nil },
		"b": func(*struct{}) (string, error) { return "[B]", nil },
	}

	pieces, err := fm.ToFormatPieces("1{a}2{b}3{a}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := pieces.Render(&struct{}{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "1[A]2[B]3[A]"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRender_ReuseAcrossContexts(t *testing.T) {
	fm := testFormatters()

	pieces, err := fm.ToFormatPieces("result: {foo}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, data := range []string{"x", "y", "x"} {
		got, err := pieces.Render(&data)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := "result: " + data + " foo " + data
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	}
}

func TestRender_FormatterFailure(t *testing.T) {
	fm := testFormatters()

	pieces, err := fm.ToFormatPieces("{foo}{nodata}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data := "x"
	got, err := pieces.Render(&data)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if got != "" {
		t.Errorf("output should be empty on failure, got %q", got)
	}
	if !errors.Is(err, ErrNoValue) {
		t.Errorf("error %v should wrap ErrNoValue", err)
	}
	var re *RenderError
	if !errors.As(err, &re) {
		t.Fatalf("error %v should be a *RenderError", err)
	}
	if re.Name != "nodata" {
		t.Errorf("Name = %q, want %q", re.Name, "nodata")
	}
	if !strings.Contains(err.Error(), `"nodata"`) {
		t.Errorf("error %q should name the placeholder", err.Error())
	}
}

func TestRenderTo(t *testing.T) {
	fm := testFormatters()

	pieces, err := fm.ToFormatPieces("一{foo}二{bar}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	data := "bar"
	if err := pieces.RenderTo(&buf, &data); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "一bar foo bar二bar bar bar"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestRenderTo_StreamsUntilFailure(t *testing.T) {
	fm := testFormatters()

	pieces, err := fm.ToFormatPieces("{foo}{nodata}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	data := "x"
	if err := pieces.RenderTo(&buf, &data); !errors.Is(err, ErrNoValue) {
		t.Fatalf("error %v should wrap ErrNoValue", err)
	}
	// Streaming keeps what was already written.
	if got, want := buf.String(), "x foo x"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderTo_WriterError(t *testing.T) {
	fm := testFormatters()

	pieces, err := fm.ToFormatPieces("{foo}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantErr := errors.New("sink closed")
	data := "x"
	err = pieces.RenderTo(failWriter{err: wantErr}, &data)
	if !errors.Is(err, wantErr) {
		t.Errorf("error %v should be the writer's error", err)
	}
	var re *RenderError
	if errors.As(err, &re) {
		t.Errorf("writer errors should not be wrapped in RenderError, got %v", re)
	}
}

func TestRenderContext(t *testing.T) {
	fm := testFormatters()

	pieces, err := fm.ToFormatPieces("{foo}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data := "x"

	got, err := pieces.RenderContext(context.Background(), &data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "x foo x"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	got, err = pieces.RenderContext(ctx, &data)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error %v should be context.Canceled", err)
	}
	if got != "" {
		t.Errorf("output should be empty after cancellation, got %q", got)
	}
}

func TestFormat(t *testing.T) {
	fm := testFormatters()
	data := "x"

	got, err := fm.Format("say {foo}", &data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "say x foo x"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	if _, err := fm.Format("{missing}", &data); !errors.Is(err, ErrUnknownFormatter) {
		t.Errorf("error %v should wrap ErrUnknownFormatter", err)
	}
}

func TestRender_Concurrent(t *testing.T) {
	fm := testFormatters()

	pieces, err := fm.ToFormatPieces("n={foo}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			data := strconv.Itoa(n)
			got, err := pieces.Render(&data)
			if err != nil {
				t.Errorf("goroutine %d: unexpected error: %v", n, err)
				return
			}
			want := "n=" + data + " foo " + data
			if got != want {
				t.Errorf("goroutine %d: got %q, want %q", n, got, want)
			}
		}(i)
	}
	wg.Wait()
}

func TestRender_TrackNaming(t *testing.T) {
	type track struct {
		Artist string
		Album  string
		Title  string
		Num    int
	}

	fm := FormatMap[track]{
		"artist": func(tr *track) (string, error) { return tr.Artist, nil },
		"album":  func(tr *track) (string, error) { return tr.Album, nil },
		"title":  func(tr *track) (string, error) { return tr.Title, nil },
		"num":    func(tr *track) (string, error) { return fmt.Sprintf("%02d", tr.Num), nil },
	}

	pieces, err := fm.ToFormatPieces("{artist}/{album}/{num} - {title}.flac")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		data track
		want string
	}{
		{
			data: track{Artist: "Sault", Album: "Untitled", Title: "Wildfires", Num: 3},
			want: "Sault/Untitled/03 - Wildfires.flac",
		},
		{
			data: track{Artist: "Nala Sinephro", Album: "Space 1.8", Title: "Space 1", Num: 1},
			want: "Nala Sinephro/Space 1.8/01 - Space 1.flac",
		},
	}

	for _, tt := range tests {
		got, err := pieces.Render(&tt.data)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}

// benchTable builds the 19-formatter table and matching template used by
// the benchmarks.
func benchTable() (FormatMap[string], string) {
	fm := make(FormatMap[string], 19)
	var tmpl strings.Builder
	for i := 1; i <= 19; i++ {
		name := strconv.Itoa(i)
		fm[name] = func(s *string) (string, error) { return "_" + *s + "_", nil }
		tmpl.WriteString("{" + name + "}")
	}
	return fm, tmpl.String()
}

func BenchmarkToFormatPieces(b *testing.B) {
	fm, tmpl := benchTable()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := fm.ToFormatPieces(tmpl); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRender(b *testing.B) {
	fm, tmpl := benchTable()
	pieces, err := fm.ToFormatPieces(tmpl)
	if err != nil {
		b.Fatal(err)
	}
	data := "bar"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pieces.Render(&data); err != nil {
			b.Fatal(err)
		}
	}
}

// failWriter fails every write with its configured error.
type failWriter struct{ err error }

func (w failWriter) Write([]byte) (int, error) { return 0, w.err }
