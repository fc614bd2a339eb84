package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/aretw0/notepad"
	"github.com/aretw0/notepad/pkg/codec"
	"github.com/aretw0/notepad/pkg/core"
	"github.com/aretw0/notepad/pkg/search"
)

func main() {
	count := flag.Int("count", 1000, "Number of notes to generate")
	adapter := flag.String("adapter", "fs", "Storage adapter: fs, sqlite or bolt")
	format := flag.String("codec", "json", "Stored format: json or yaml")
	keep := flag.Bool("keep", false, "Keep the benchmark directory after running")
	flag.Parse()

	benchDir, err := os.MkdirTemp("", "notepad_bench_")
	if err != nil {
		panic(err)
	}
	defer func() {
		if !*keep {
			os.RemoveAll(benchDir)
		} else {
			fmt.Printf("Keeping bench dir: %s\n", benchDir)
		}
	}()

	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))
	opts := []notepad.Option{
		notepad.WithAdapter(*adapter),
		notepad.WithCodec(*format),
		notepad.WithLogger(logger),
		notepad.WithSeed(false),
	}

	// 1. Generate the collection directly through the blob store.
	fmt.Printf("Generating %d notes in %s (%s/%s)...\n", *count, benchDir, *adapter, *format)
	startGen := time.Now()
	if err := generate(ctx, benchDir, *count, *format, opts); err != nil {
		panic(err)
	}
	fmt.Printf("Generation took: %v\n", time.Since(startGen))

	// 2. Load
	startLoad := time.Now()
	store, err := notepad.New(ctx, benchDir, opts...)
	if err != nil {
		panic(err)
	}
	defer store.Close()
	loadDuration := time.Since(startLoad)

	// 3. Substring search
	startSearch := time.Now()
	view := store.SetSearchQuery("note 42")
	searchDuration := time.Since(startSearch)

	// 4. Fuzzy search
	startFuzzy := time.Now()
	fuzzy := search.Fuzzy(store.Notes(), "bnch42")
	fuzzyDuration := time.Since(startFuzzy)

	// 5. Edit and save one note: the whole envelope is rewritten.
	startSave := time.Now()
	if _, err := store.Select(ctx, "note_1"); err != nil {
		panic(err)
	}
	if _, err := store.UpdateDraft(core.EditContent("changed")); err != nil {
		panic(err)
	}
	if _, err := store.Save(ctx, core.SaveManual); err != nil {
		panic(err)
	}
	saveDuration := time.Since(startSave)

	fmt.Printf("--------------------------------------------------\n")
	fmt.Printf("Benchmark Result (%d notes):\n", *count)
	fmt.Printf("  Load:   %v\n", loadDuration)
	fmt.Printf("  Search: %v (matches: %d)\n", searchDuration, len(view.Notes))
	fmt.Printf("  Fuzzy:  %v (matches: %d)\n", fuzzyDuration, len(fuzzy))
	fmt.Printf("  Save:   %v\n", saveDuration)
	fmt.Printf("--------------------------------------------------\n")
}

func generate(ctx context.Context, dir string, count int, format string, opts []notepad.Option) error {
	c, err := codec.ByName(format)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	env := core.Envelope{Notes: make(map[string]core.Note, count), NextID: count + 1}
	for i := 1; i <= count; i++ {
		id := fmt.Sprintf("note_%d", i)
		at := now.Add(-time.Duration(i) * time.Minute)
		env.Notes[id] = core.Note{
			ID:           id,
			Title:        fmt.Sprintf("Note %d", i),
			Content:      fmt.Sprintf("Benchmark note %d\nThis is a test note.", i),
			DateCreated:  at,
			DateModified: at,
		}
	}

	data, err := c.Encode(env)
	if err != nil {
		return err
	}

	blob, err := notepad.Open(dir, opts...)
	if err != nil {
		return err
	}
	if closer, ok := blob.(io.Closer); ok {
		defer closer.Close()
	}
	return blob.Put(ctx, core.DefaultKey, data)
}
