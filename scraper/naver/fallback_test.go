package naver

import "testing"

func TestExtractTotalCountFromFilterBar(t *testing.T) {
	html := `<html><body>
		<div class="filter"><span class="subFilter_num__S9sle">123,456</span></div>
	</body></html>`

	if got := extractTotalCount(html); got != 123456 {
		t.Errorf("filter-bar count: got %d, want 123456", got)
	}
}

func TestExtractTotalCountFromText(t *testing.T) {
	html := `<html><body><div>전체 45,678개의 상품</div></body></html>`

	if got := extractTotalCount(html); got != 45678 {
		t.Errorf("text fallback: got %d, want 45678", got)
	}
}

func TestExtractTotalCountMissing(t *testing.T) {
	if got := extractTotalCount(`<html><body><p>no results</p></body></html>`); got != 0 {
		t.Errorf("missing count: got %d, want 0", got)
	}
}
