package clipboard

import (
	"errors"
	"testing"
)

type fakeBackend struct {
	text string
	err  error
}

func (f *fakeBackend) ReadAll() (string, error) { return f.text, f.err }

func (f *fakeBackend) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

func useFake(t *testing.T, f *fakeBackend) {
	t.Helper()
	prev := SetBackend(f)
	t.Cleanup(func() { SetBackend(prev) })
}

func TestWriteReadText(t *testing.T) {
	fake := &fakeBackend{}
	useFake(t, fake)

	if err := WriteText("hello"); err != nil {
		t.Fatalf("WriteText() returned error: %v", err)
	}
	got, err := ReadText()
	if err != nil {
		t.Fatalf("ReadText() returned error: %v", err)
	}
	if got != "hello" {
		t.Errorf("ReadText() = %q, want %q", got, "hello")
	}
}

func TestSystemSlot(t *testing.T) {
	tests := []struct {
		name    string
		backend *fakeBackend
		want    string
		wantOK  bool
		wantErr bool
	}{
		{name: "text present", backend: &fakeBackend{text: "Title"}, want: "Title", wantOK: true},
		{name: "empty clipboard", backend: &fakeBackend{}, want: "", wantOK: false},
		{name: "read failure", backend: &fakeBackend{err: errors.New("no display")}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useFake(t, tt.backend)

			got, ok, err := SystemSlot{}.Get("ignored")
			if tt.wantErr {
				if err == nil {
					t.Fatal("Get() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Get() returned error: %v", err)
			}
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Get() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
