package cli

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/fingerbox/pkg/cache"
)

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, ".cache", "fingerbox")
	if dir != expected {
		t.Errorf("cacheDir() = %q, want %q", dir, expected)
	}
}

func TestCacheDirXDG(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", xdg)

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if want := filepath.Join(xdg, "fingerbox"); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestNewCache(t *testing.T) {
	c := New(io.Discard, LogInfo)
	ctx := t.Context()

	t.Run("no-cache", func(t *testing.T) {
		got, err := c.newCache(ctx, "/should/not/be/created", true)
		if err != nil {
			t.Fatal(err)
		}
		if _, ok := got.(cache.NullCache); !ok {
			t.Errorf("newCache(noCache) = %T, want NullCache", got)
		}
	})

	t.Run("explicit directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "c")
		got, err := c.newCache(ctx, dir, false)
		if err != nil {
			t.Fatal(err)
		}
		fc, ok := got.(*cache.FileCache)
		if !ok {
			t.Fatalf("newCache(dir) = %T, want *FileCache", got)
		}
		if fc.Dir() != dir {
			t.Errorf("Dir() = %q, want %q", fc.Dir(), dir)
		}
	})

	t.Run("environment", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "env")
		t.Setenv(cacheEnv, dir)
		got, err := c.newCache(ctx, "", false)
		if err != nil {
			t.Fatal(err)
		}
		if fc, ok := got.(*cache.FileCache); !ok || fc.Dir() != dir {
			t.Errorf("newCache from $%s = %#v", cacheEnv, got)
		}
	})

	t.Run("default directory", func(t *testing.T) {
		xdg := t.TempDir()
		t.Setenv(cacheEnv, "")
		t.Setenv("XDG_CACHE_HOME", xdg)
		got, err := c.newCache(ctx, "", false)
		if err != nil {
			t.Fatal(err)
		}
		if fc, ok := got.(*cache.FileCache); !ok || fc.Dir() != filepath.Join(xdg, "fingerbox") {
			t.Errorf("default cache = %#v", got)
		}
	})

	t.Run("unsupported url", func(t *testing.T) {
		if _, err := c.newCache(ctx, "memcached://localhost", false); err == nil {
			t.Error("expected error for unsupported cache url")
		}
	})
}

func TestCacheClearCommand(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", xdg)
	t.Setenv(cacheEnv, "")

	fc, err := cache.NewFileCache(filepath.Join(xdg, "fingerbox"))
	if err != nil {
		t.Fatal(err)
	}
	for _, k := range []string{"a", "b", "c"} {
		if err := fc.Set(t.Context(), k, []byte(k), 0); err != nil {
			t.Fatal(err)
		}
	}

	if _, err := execute(t, "cache", "clear"); err != nil {
		t.Fatalf("cache clear: %v", err)
	}
	if _, ok, _ := fc.Get(t.Context(), "a"); ok {
		t.Error("entry survived cache clear")
	}
}

func TestCachePathCommand(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", xdg)

	out, err := execute(t, "cache", "path")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(xdg, "fingerbox") + "\n"; out != want {
		t.Errorf("cache path = %q, want %q", out, want)
	}
}
