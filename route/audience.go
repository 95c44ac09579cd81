package route

import (
	"github.com/laborlink/matchcore/classify"
	"github.com/laborlink/matchcore/core"
)

// employerTerms is the business-context vocabulary. Any hit flips the
// estimate to employer; the default segment is worker.
var employerTerms = []string{
	"사업주",
	"사업장",
	"대표입니다",
	"직원이",
	"직원을",
	"직원들",
	"채용",
	"취업규칙",
	"4대보험",
	"급여 대장",
	"급여 계산",
	"아웃소싱",
	"우리 회사",
	"저희 회사",
	"회사를 운영",
	"인사 규정",
	"자문",
}

// GuessAudience estimates the requester segment from domain vocabulary
// alone. It runs before any statistical step so the catalog subset is
// fixed by the time scoring starts.
func GuessAudience(text string) core.Audience {
	compacted := classify.Compact(text)
	for _, term := range employerTerms {
		if termCompact := classify.Compact(term); termCompact != "" && contains(compacted, termCompact) {
			return core.AudienceEmployer
		}
	}
	return core.AudienceWorker
}
