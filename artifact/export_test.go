package artifact

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type fakeClipboard struct {
	mu     sync.Mutex
	writes []string
	err    error
}

func (c *fakeClipboard) WriteText(_ context.Context, text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.writes = append(c.writes, text)
	return c.err
}

type recordingNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (n *recordingNotifier) Notify(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, message)
}

type fakeHandle struct {
	artifact   Artifact
	triggerErr error
	triggers   int
	releases   int
}

func (h *fakeHandle) Trigger() (string, error) {
	h.triggers++
	if h.triggerErr != nil {
		return "", h.triggerErr
	}
	return "/downloads/" + h.artifact.Name, nil
}

func (h *fakeHandle) Release() error {
	h.releases++
	return nil
}

type fakeSaver struct {
	handles    []*fakeHandle
	stageErr   error
	triggerErr error
}

func (s *fakeSaver) Stage(a Artifact) (Handle, error) {
	if s.stageErr != nil {
		return nil, s.stageErr
	}
	h := &fakeHandle{artifact: a, triggerErr: s.triggerErr}
	s.handles = append(s.handles, h)
	return h, nil
}

const multiLineResult = "{1:F01BANKDEFFXXXX0000000000}{4:\n:20:REF\r\n:25:ACC\n-}"

func TestCopyMessageSuccess(t *testing.T) {
	clip := &fakeClipboard{}
	notes := &recordingNotifier{}
	exporter := NewExporter(clip, &fakeSaver{}, notes)

	task := exporter.CopyMessage(Surfaces{Output: StaticText(multiLineResult)})
	if task == nil {
		t.Fatal("expected a task")
	}
	if len(clip.writes) != 0 {
		t.Fatal("clipboard written before the task ran")
	}

	outcome := task(context.Background())
	if outcome.Err != nil {
		t.Fatalf("unexpected error: %v", outcome.Err)
	}
	if outcome.Bytes != len(multiLineResult) {
		t.Errorf("bytes = %d, want %d", outcome.Bytes, len(multiLineResult))
	}
	if diff := cmp.Diff([]string{multiLineResult}, clip.writes); diff != "" {
		t.Errorf("clipboard payload mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{CopiedNotice}, notes.messages); diff != "" {
		t.Errorf("notifications mismatch (-want +got):\n%s", diff)
	}
}

func TestCopyMessageFailureIsSilent(t *testing.T) {
	denied := errors.New("permission denied")
	clip := &fakeClipboard{err: denied}
	notes := &recordingNotifier{}
	exporter := NewExporter(clip, &fakeSaver{}, notes)

	outcome := exporter.CopyMessage(Surfaces{Output: StaticText("T")})(context.Background())
	if !errors.Is(outcome.Err, denied) {
		t.Errorf("err = %v, want %v", outcome.Err, denied)
	}
	if len(notes.messages) != 0 {
		t.Errorf("got notifications %v, want none", notes.messages)
	}
}

func TestCopyMessageWithoutOutput(t *testing.T) {
	clip := &fakeClipboard{}
	exporter := NewExporter(clip, &fakeSaver{}, &recordingNotifier{})

	if task := exporter.CopyMessage(Surfaces{Input: &fakeInput{text: "draft"}}); task != nil {
		t.Error("expected nil task without an output surface")
	}
	if _, ok := <-Go(context.Background(), nil); ok {
		t.Error("nil task should yield no outcome")
	}
}

func TestCopyMessageTasksAreIndependent(t *testing.T) {
	clip := &fakeClipboard{}
	notes := &recordingNotifier{}
	exporter := NewExporter(clip, &fakeSaver{}, notes)

	first := Go(context.Background(), exporter.CopyMessage(Surfaces{Output: StaticText("one")}))
	second := Go(context.Background(), exporter.CopyMessage(Surfaces{Output: StaticText("two")}))

	for _, done := range []<-chan Outcome{first, second} {
		outcome, ok := <-done
		if !ok || outcome.Err != nil {
			t.Fatalf("outcome = %+v, ok = %v", outcome, ok)
		}
	}
	if len(notes.messages) != 2 {
		t.Errorf("notifications = %d, want 2", len(notes.messages))
	}
}

func TestDownloadMessage(t *testing.T) {
	saver := &fakeSaver{}
	exporter := NewExporter(&fakeClipboard{}, saver, &recordingNotifier{})

	receipt, err := exporter.DownloadMessage(Surfaces{Output: StaticText(multiLineResult)})
	if err != nil {
		t.Fatalf("DownloadMessage: %v", err)
	}
	if len(saver.handles) != 1 {
		t.Fatalf("staged %d artifacts, want 1", len(saver.handles))
	}
	h := saver.handles[0]
	want := Artifact{Name: "swift-message.txt", ContentType: "text/plain", Data: []byte(multiLineResult)}
	if diff := cmp.Diff(want, h.artifact); diff != "" {
		t.Errorf("artifact mismatch (-want +got):\n%s", diff)
	}
	if h.triggers != 1 || h.releases != 1 {
		t.Errorf("triggers = %d, releases = %d, want 1 and 1", h.triggers, h.releases)
	}
	if receipt.Location != "/downloads/swift-message.txt" || receipt.Size != len(multiLineResult) {
		t.Errorf("unexpected receipt %+v", receipt)
	}
	if receipt.Digest != want.Digest() || len(receipt.Digest) != 64 {
		t.Errorf("digest = %q", receipt.Digest)
	}
}

func TestDownloadMessageReleasesOnFailedSave(t *testing.T) {
	cancelled := errors.New("save cancelled")
	saver := &fakeSaver{triggerErr: cancelled}
	exporter := NewExporter(&fakeClipboard{}, saver, &recordingNotifier{})

	_, err := exporter.DownloadMessage(Surfaces{Output: StaticText("T")})
	if !errors.Is(err, cancelled) {
		t.Fatalf("err = %v, want %v", err, cancelled)
	}
	if h := saver.handles[0]; h.releases != 1 {
		t.Errorf("releases = %d, want 1", h.releases)
	}
}

func TestDownloadMessageWithoutOutput(t *testing.T) {
	saver := &fakeSaver{}
	exporter := NewExporter(&fakeClipboard{}, saver, &recordingNotifier{})

	receipt, err := exporter.DownloadMessage(Surfaces{})
	if err != nil || receipt != (Receipt{}) {
		t.Errorf("got %+v, %v; want zero receipt and nil error", receipt, err)
	}
	if len(saver.handles) != 0 {
		t.Error("nothing should be staged without an output surface")
	}
}

func TestDownloadMessageStageError(t *testing.T) {
	full := errors.New("disk full")
	exporter := NewExporter(&fakeClipboard{}, &fakeSaver{stageErr: full}, &recordingNotifier{})

	if _, err := exporter.DownloadMessage(Surfaces{Output: StaticText("T")}); !errors.Is(err, full) {
		t.Errorf("err = %v, want %v", err, full)
	}
}

func TestWithFilename(t *testing.T) {
	saver := &fakeSaver{}
	exporter := NewExporter(&fakeClipboard{}, saver, &recordingNotifier{}, WithFilename("mt940.txt"))

	if _, err := exporter.DownloadMessage(Surfaces{Output: StaticText("T")}); err != nil {
		t.Fatal(err)
	}
	if got := saver.handles[0].artifact.Name; got != "mt940.txt" {
		t.Errorf("name = %q", got)
	}
}
