package collect

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/user/img2gif/pkg/adapters/logger"
	"github.com/user/img2gif/pkg/adapters/smartdecoder"
	"github.com/user/img2gif/pkg/mocks"
	"github.com/user/img2gif/pkg/pipeline"
)

var testDir = filepath.Join("frames")

func names(files []pipeline.SourceFile) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.Name
	}
	return out
}

func newFS(files ...string) *mocks.FileSystem {
	fs := mocks.NewFileSystem()
	fs.AddDir(testDir)
	for _, name := range files {
		fs.AddFile(filepath.Join(testDir, name), []byte{})
	}
	return fs
}

func TestStage_Execute_FiltersAndSorts(t *testing.T) {
	fs := newFS("c.png", "a.PNG", "b.jpeg", "readme.txt", "d.Tiff", "e.webp", "f.bmp", "movie.gif", "g.jpg")
	stage := NewStage(fs, smartdecoder.New(), logger.NewNoop())

	result, err := stage.Execute(context.Background(), pipeline.CollectInput{Dir: testDir})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"a.PNG", "b.jpeg", "c.png", "d.Tiff", "e.webp", "f.bmp", "g.jpg"}
	if got := names(result.Files); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	if result.Files[0].Path != filepath.Join(testDir, "a.PNG") {
		t.Errorf("unexpected path %q", result.Files[0].Path)
	}
}

func TestStage_Execute_LexicographicNotNatural(t *testing.T) {
	fs := newFS("img2.png", "img10.png", "img1.png")
	stage := NewStage(fs, smartdecoder.New(), logger.NewNoop())

	result, err := stage.Execute(context.Background(), pipeline.CollectInput{Dir: testDir})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"img1.png", "img10.png", "img2.png"}
	if got := names(result.Files); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestStage_Execute_SkipsDirectories(t *testing.T) {
	fs := newFS("a.png")
	fs.AddDir(filepath.Join(testDir, "nested.png"))
	stage := NewStage(fs, smartdecoder.New(), logger.NewNoop())

	result, err := stage.Execute(context.Background(), pipeline.CollectInput{Dir: testDir})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := names(result.Files); !reflect.DeepEqual(got, []string{"a.png"}) {
		t.Errorf("expected only a.png, got %v", got)
	}
}

func TestStage_Execute_NoImages(t *testing.T) {
	fs := newFS("notes.txt", "data.csv")
	stage := NewStage(fs, smartdecoder.New(), logger.NewNoop())

	result, err := stage.Execute(context.Background(), pipeline.CollectInput{Dir: testDir})
	if err != nil {
		t.Fatalf("empty result must not be an error: %v", err)
	}
	if len(result.Files) != 0 {
		t.Errorf("expected no files, got %v", names(result.Files))
	}
}

func TestStage_Execute_MissingDirectory(t *testing.T) {
	stage := NewStage(mocks.NewFileSystem(), smartdecoder.New(), logger.NewNoop())

	if _, err := stage.Execute(context.Background(), pipeline.CollectInput{Dir: "missing"}); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestStage_Execute_ContextCancelled(t *testing.T) {
	stage := NewStage(newFS("a.png"), smartdecoder.New(), logger.NewNoop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := stage.Execute(ctx, pipeline.CollectInput{Dir: testDir}); err == nil {
		t.Error("expected error for cancelled context")
	}
}
