package fileservice

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

type fakeDialogs struct {
	path string
	ok   bool
	err  error

	opens, saves int
}

func (f *fakeDialogs) OpenDialog(context.Context) (string, bool, error) {
	f.opens++
	return f.path, f.ok, f.err
}

func (f *fakeDialogs) SaveDialog(context.Context) (string, bool, error) {
	f.saves++
	return f.path, f.ok, f.err
}

type memFiles struct {
	files map[string]string
	reads int
}

func (m *memFiles) Read(_ context.Context, path string) (string, error) {
	m.reads++
	text, ok := m.files[path]
	if !ok {
		return "", &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return text, nil
}

func (m *memFiles) Write(_ context.Context, path, text string) error {
	if m.files == nil {
		m.files = map[string]string{}
	}
	m.files[path] = text
	return nil
}

func TestOpenFile_Cancelled(t *testing.T) {
	d := &fakeDialogs{ok: false}
	f := &memFiles{}

	_, _, err := OpenFile(context.Background(), Combine(d, f))
	if !errors.Is(err, ErrCancelled) {
		t.Fatalf("err=%v, want ErrCancelled", err)
	}
	if d.opens != 1 || f.reads != 0 {
		t.Fatalf("opens=%d reads=%d, want 1 and 0", d.opens, f.reads)
	}
}

func TestOpenFile_ReadsPickedPath(t *testing.T) {
	d := &fakeDialogs{path: "/a.md", ok: true}
	f := &memFiles{files: map[string]string{"/a.md": "# hi"}}

	path, text, err := OpenFile(context.Background(), Combine(d, f))
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	if path != "/a.md" || text != "# hi" {
		t.Fatalf("got (%q, %q)", path, text)
	}
}

func TestOpenFile_MissingFileIsClassified(t *testing.T) {
	d := &fakeDialogs{path: "/gone", ok: true}

	_, _, err := OpenFile(context.Background(), Combine(d, &memFiles{}))
	var fe *Error
	if !errors.As(err, &fe) {
		t.Fatalf("err=%T, want *Error", err)
	}
	if fe.Kind != KindNotFound || fe.Op != OpRead || fe.Path != "/gone" {
		t.Fatalf("err=%+v", fe)
	}
}

func TestOpenFile_DialogFailure(t *testing.T) {
	d := &fakeDialogs{err: errors.New("no display")}

	_, _, err := OpenFile(context.Background(), Combine(d, &memFiles{}))
	if got := KindOf(err); got != KindOther {
		t.Fatalf("kind=%v, want %v", got, KindOther)
	}
	if errors.Is(err, ErrCancelled) {
		t.Fatalf("dialog failure reported as cancel")
	}
}

func TestSaveFile(t *testing.T) {
	t.Run("known path skips dialog", func(t *testing.T) {
		d := &fakeDialogs{}
		f := &memFiles{}
		path, err := SaveFile(context.Background(), Combine(d, f), "/x.txt", "body")
		if err != nil || path != "/x.txt" {
			t.Fatalf("SaveFile=(%q, %v)", path, err)
		}
		if d.saves != 0 {
			t.Fatalf("saves=%d, want 0", d.saves)
		}
		if f.files["/x.txt"] != "body" {
			t.Fatalf("written=%q", f.files["/x.txt"])
		}
	})

	t.Run("untitled asks once", func(t *testing.T) {
		d := &fakeDialogs{path: "/new.txt", ok: true}
		f := &memFiles{}
		path, err := SaveFile(context.Background(), Combine(d, f), "", "hi")
		if err != nil || path != "/new.txt" {
			t.Fatalf("SaveFile=(%q, %v)", path, err)
		}
		if d.saves != 1 {
			t.Fatalf("saves=%d, want 1", d.saves)
		}
	})

	t.Run("untitled cancelled", func(t *testing.T) {
		d := &fakeDialogs{}
		f := &memFiles{}
		_, err := SaveFile(context.Background(), Combine(d, f), "", "hi")
		if !errors.Is(err, ErrCancelled) {
			t.Fatalf("err=%v, want ErrCancelled", err)
		}
		if d.saves != 1 || len(f.files) != 0 {
			t.Fatalf("saves=%d files=%v", d.saves, f.files)
		}
	})
}

func TestClassify(t *testing.T) {
	cases := []struct {
		err  error
		want Kind
	}{
		{&fs.PathError{Op: "open", Path: "p", Err: fs.ErrNotExist}, KindNotFound},
		{&fs.PathError{Op: "open", Path: "p", Err: fs.ErrPermission}, KindPermissionDenied},
		{fs.ErrExist, KindAlreadyExists},
		{ErrInvalidUTF8, KindInvalidData},
		{context.Canceled, KindInterrupted},
		{errors.New("boom"), KindOther},
	}
	for _, tc := range cases {
		err := Classify(OpRead, "p", tc.err)
		if got := KindOf(err); got != tc.want {
			t.Fatalf("KindOf(%v)=%v, want %v", tc.err, got, tc.want)
		}
		if !errors.Is(err, tc.err) {
			t.Fatalf("Classify lost the cause %v", tc.err)
		}
	}

	if Classify(OpRead, "p", nil) != nil {
		t.Fatalf("Classify(nil) must be nil")
	}
	if err := Classify(OpRead, "p", ErrCancelled); err != ErrCancelled {
		t.Fatalf("Classify(ErrCancelled)=%v", err)
	}
}

func TestError_Message(t *testing.T) {
	err := Classify(OpRead, "/etc/x", &fs.PathError{Op: "open", Path: "/etc/x", Err: fs.ErrPermission})
	if got, want := err.Error(), "read /etc/x: permission denied"; got != want {
		t.Fatalf("Error()=%q, want %q", got, want)
	}
	e := &Error{Op: OpWrite, Kind: KindIsDirectory}
	if got, want := e.Error(), "write: is a directory"; got != want {
		t.Fatalf("Error()=%q, want %q", got, want)
	}
}

func TestDisk_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.md")
	text := "line one\n\tline two\n世界\n"

	var d Disk
	if err := d.Write(context.Background(), path, text); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := d.Read(context.Background(), path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got != text {
		t.Fatalf("read %q, want %q", got, text)
	}
}

func TestDisk_Failures(t *testing.T) {
	dir := t.TempDir()
	var d Disk

	_, err := d.Read(context.Background(), filepath.Join(dir, "missing"))
	if got := KindOf(err); got != KindNotFound {
		t.Fatalf("missing: kind=%v, want %v", got, KindNotFound)
	}

	bad := filepath.Join(dir, "bad.bin")
	if err := os.WriteFile(bad, []byte{0xff, 0xfe, 'a'}, 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = d.Read(context.Background(), bad)
	if got := KindOf(err); got != KindInvalidData {
		t.Fatalf("invalid utf8: kind=%v, want %v", got, KindInvalidData)
	}
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("err=%v, want ErrInvalidUTF8", err)
	}

	if runtime.GOOS != "windows" {
		_, err = d.Read(context.Background(), dir)
		if got := KindOf(err); got != KindIsDirectory {
			t.Fatalf("directory: kind=%v, want %v", got, KindIsDirectory)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := d.Write(ctx, filepath.Join(dir, "x"), "x"); KindOf(err) != KindInterrupted {
		t.Fatalf("cancelled write: %v", err)
	}
}

func TestDisk_PermissionDenied(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced here")
	}
	path := filepath.Join(t.TempDir(), "locked")
	if err := os.WriteFile(path, []byte("x"), 0o000); err != nil {
		t.Fatal(err)
	}
	_, err := Disk{}.Read(context.Background(), path)
	if got := KindOf(err); got != KindPermissionDenied {
		t.Fatalf("kind=%v, want %v", got, KindPermissionDenied)
	}
}

func TestPrompt_ResolveAndCancel(t *testing.T) {
	p := NewPrompt("/start")

	go func() {
		req := <-p.Requests()
		if req.Kind != RequestSave || req.StartDir != "/start" {
			req.Fail(errors.New("unexpected request"))
			return
		}
		req.Resolve("/picked.txt")
		req.Cancel()
	}()
	path, ok, err := p.SaveDialog(context.Background())
	if err != nil || !ok || path != "/picked.txt" {
		t.Fatalf("SaveDialog=(%q, %v, %v)", path, ok, err)
	}

	go func() { (<-p.Requests()).Cancel() }()
	_, ok, err = p.OpenDialog(context.Background())
	if err != nil || ok {
		t.Fatalf("OpenDialog after cancel=(%v, %v)", ok, err)
	}
}

func TestPrompt_ContextEndsWait(t *testing.T) {
	p := NewPrompt("")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, ok, err := p.OpenDialog(ctx)
	if ok || !errors.Is(err, context.Canceled) {
		t.Fatalf("OpenDialog=(%v, %v), want context.Canceled", ok, err)
	}
}
