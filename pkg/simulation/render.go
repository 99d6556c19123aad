package simulation

// RenderSink receives a read-only Snapshot after every step.
type RenderSink interface {
	Render(snap *Snapshot)
}

// RenderFunc adapts a plain function to a RenderSink.
type RenderFunc func(snap *Snapshot)

func (f RenderFunc) Render(snap *Snapshot) { f(snap) }

// ChannelSink pushes snapshots to a UI goroutine without blocking.
// When the buffer is full the oldest waiting snapshot is discarded, so the
// newest one, including the final halted state, always gets through.
// An unbuffered channel only receives a snapshot if a reader is waiting.
type ChannelSink chan *Snapshot

func (c ChannelSink) Render(snap *Snapshot) {
	if cap(c) == 0 {
		select {
		case c <- snap:
		default:
		}
		return
	}
	for {
		select {
		case c <- snap:
			return
		default:
		}
		select {
		case <-c:
		default:
		}
	}
}

type discardSink struct{}

func (discardSink) Render(*Snapshot) {}

// DiscardSink drops every snapshot.
var DiscardSink RenderSink = discardSink{}
