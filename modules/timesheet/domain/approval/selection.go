package approval

// Ref addresses one employee-day inside the current month.
type Ref struct {
	EmployeeID int64
	Date       string
}

// Selection is the ordered set of reports picked for a bulk action. Toggling
// never validates against the loaded data; the service re-checks at commit.
type Selection struct {
	refs []Ref
}

func (s *Selection) Len() int { return len(s.refs) }

func (s *Selection) Contains(ref Ref) bool {
	for _, r := range s.refs {
		if r == ref {
			return true
		}
	}
	return false
}

// Refs returns a copy in pick order.
func (s *Selection) Refs() []Ref {
	out := make([]Ref, len(s.refs))
	copy(out, s.refs)
	return out
}

func (s *Selection) Toggle(ref Ref) {
	for i, r := range s.refs {
		if r == ref {
			s.refs = append(s.refs[:i], s.refs[i+1:]...)
			return
		}
	}
	s.refs = append(s.refs, ref)
}

// ToggleBatch flips a whole employee's pending days at once: when every given
// date is already selected they all come out, otherwise the missing ones go
// in. Other employees' picks are never touched. An empty date list is a no-op.
func (s *Selection) ToggleBatch(employeeID int64, dates []string) {
	if len(dates) == 0 {
		return
	}

	allSelected := true
	for _, date := range dates {
		if !s.Contains(Ref{EmployeeID: employeeID, Date: date}) {
			allSelected = false
			break
		}
	}

	if allSelected {
		inBatch := make(map[string]struct{}, len(dates))
		for _, date := range dates {
			inBatch[date] = struct{}{}
		}
		kept := s.refs[:0]
		for _, r := range s.refs {
			if r.EmployeeID == employeeID {
				if _, drop := inBatch[r.Date]; drop {
					continue
				}
			}
			kept = append(kept, r)
		}
		s.refs = kept
		return
	}

	for _, date := range dates {
		ref := Ref{EmployeeID: employeeID, Date: date}
		if !s.Contains(ref) {
			s.refs = append(s.refs, ref)
		}
	}
}

func (s *Selection) Clear() {
	s.refs = nil
}
