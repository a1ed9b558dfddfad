package model

import (
	"context"

	"yalv/internal/virsh"
	"yalv/pkg/logging"
)

const modelSubsystem = "Model"

// Visible returns the records shown under the current filter, in backend
// order.
func (m *Model) Visible() []virsh.VMRecord {
	visible := make([]virsh.VMRecord, 0, len(m.Records))
	for _, r := range m.Records {
		if m.Filter == FilterRunningOnly && !r.State.IsRunning() {
			continue
		}
		visible = append(visible, r)
	}
	return visible
}

// Selected returns the record under the cursor. ok is false when nothing is
// visible.
func (m *Model) Selected() (rec virsh.VMRecord, ok bool) {
	visible := m.Visible()
	if len(visible) == 0 {
		return virsh.VMRecord{}, false
	}
	return visible[m.Cursor], true
}

// MoveSelection moves the cursor by delta, clamped to the visible list.
func (m *Model) MoveSelection(delta int) {
	n := len(m.Visible())
	if n == 0 {
		return
	}
	m.Cursor = clamp(m.Cursor+delta, 0, n-1)
}

// Refresh lists domains for filter and applies the result. On error the
// registry, filter and selection are left as they were.
func (m *Model) Refresh(ctx context.Context, filter ViewFilter) error {
	res, err := m.Backend.List(ctx, filter.IncludeInactive())
	if err != nil {
		logging.Error(modelSubsystem, err, "Refresh with filter %s failed", filter)
		return err
	}
	m.ApplyList(filter, res)
	return nil
}

// ApplyList replaces records, filter and degraded counter together, then
// re-clamps the cursor. The previously selected domain stays selected if it
// is still visible; otherwise the cursor resets to the top.
func (m *Model) ApplyList(filter ViewFilter, res virsh.ListResult) {
	prev, hadSelection := m.Selected()

	m.Records = append([]virsh.VMRecord(nil), res.Records...)
	m.Filter = filter
	m.Skipped = res.Skipped

	m.Cursor = 0
	if hadSelection {
		for i, r := range m.Visible() {
			if r.Name == prev.Name {
				m.Cursor = i
				break
			}
		}
	}
	logging.Debug(modelSubsystem, "Applied %d records (filter %s, cursor %d)", len(m.Records), filter, m.Cursor)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
