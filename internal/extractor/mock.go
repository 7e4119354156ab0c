package extractor

// MockExtractor implements Extractor for testing purposes.
// It returns a predefined document or error instead of reading a file.
type MockExtractor struct {
	MockDocument Document
	MockErr      error
}

// NewMockExtractor creates a new MockExtractor with the given mock data.
func NewMockExtractor(doc Document, err error) *MockExtractor {
	return &MockExtractor{
		MockDocument: doc,
		MockErr:      err,
	}
}

// Extract returns the predefined mock document or error.
func (e *MockExtractor) Extract(path string) (Document, error) {
	if e.MockErr != nil {
		return Document{}, e.MockErr
	}
	return e.MockDocument, nil
}
