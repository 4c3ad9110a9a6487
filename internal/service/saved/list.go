package saved

import "github.com/heartmarshall/captionkit-backend/internal/domain"

// List returns a copy of all saved captions in save order.
func (s *Service) List() []domain.Caption {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.items)
}

// Count returns the number of saved captions.
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Filter returns the captions matching f in save order together with the
// total number of saved captions.
func (s *Service) Filter(f domain.SavedFilter) ([]domain.Caption, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Caption, 0, len(s.items))
	for _, c := range s.items {
		if f.Match(c) {
			out = append(out, c.Clone())
		}
	}
	return out, len(s.items)
}
