package audit

import "github.com/laborlink/matchcore/core"

// Sentence templates crossed with catalog keywords during generation.
// Five per audience; the keyword replaces the %s verb phrase.
var workerTemplates = []string{
	"%s 때문에 힘든데 어떻게 해야 하나요?",
	"%s 문제로 회사와 갈등이 있습니다.",
	"%s 관련해서 도움을 받을 수 있나요?",
	"%s 때문에 퇴사를 고민하고 있어요.",
	"%s 절차가 어떻게 되는지 궁금합니다.",
}

var employerTemplates = []string{
	"%s 업무를 맡기고 싶습니다.",
	"직원 %s 문제를 어떻게 처리해야 하나요?",
	"%s 관련해서 자문이 필요합니다.",
	"%s 규정을 정비하려고 합니다.",
	"%s 대행 비용이 어느 정도인가요?",
}

// Padding clauses appended cyclically when the unique question set falls
// short of the target volume.
var paddingSuffixes = []string{
	" 빠른 답변 부탁드립니다.",
	" 처음 겪는 일이라 막막합니다.",
	" 관련 서류는 준비되어 있습니다.",
	" 비용도 함께 알려주세요.",
	" 가능한 방법을 알고 싶습니다.",
}

// Generic catalog terms excluded from core-keyword extraction. They occur
// in almost every question and carry no routing signal.
var keywordStopwords = []string{
	"상담", "문의", "문제", "방법", "서비스", "기타",
}

// Secondary keyword list consulted when no catalog keyword occurs in a
// question. These are common labor terms the catalog does not (yet) cover,
// which is exactly what the missing-keyword table is meant to surface.
var fallbackKeywords = []string{
	"연차", "주휴수당", "최저임금", "실업급여", "퇴직연금",
}

// alignmentGroup permits a keyword cluster to align with a service cluster
// even when the keyword never occurs in the service's catalog text.
type alignmentGroup struct {
	Keywords []string
	Services []string
}

var alignmentGroups = []alignmentGroup{
	{
		Keywords: []string{"임금", "월급", "급여", "체불", "퇴직금", "체당금", "대지급금"},
		Services: []string{"임금체불 진정 대리", "대지급금 청구 대리", "급여 아웃소싱"},
	},
	{
		Keywords: []string{"해고", "부당해고", "권고사직", "징계"},
		Services: []string{"부당해고 구제신청 대리", "인사노무 자문"},
	},
	{
		Keywords: []string{"괴롭힘", "갑질", "따돌림", "폭언", "성희롱"},
		Services: []string{"직장 내 괴롭힘 신고 지원", "직장 내 괴롭힘 예방 교육"},
	},
	{
		Keywords: []string{"산재", "산업재해", "업무상 재해", "요양급여"},
		Services: []string{"산재보상 신청 대리"},
	},
	{
		Keywords: []string{"근로계약", "근로계약서", "연봉계약", "취업규칙", "사규"},
		Services: []string{"근로계약서 검토", "취업규칙 작성·변경"},
	},
	{
		Keywords: []string{"4대보험", "건강보험", "보수총액"},
		Services: []string{"4대보험 업무 대행"},
	},
}

// Curated questions lifted from public ministry FAQ pages. Each keeps its
// source attribution so audit reports stay traceable.
var seedQuestions = []Question{
	{
		Text:     "임금을 지급받지 못한 경우 어떻게 해결할 수 있나요?",
		Audience: core.AudienceWorker,
		Source:   "고용노동부 민원 FAQ",
		URL:      "https://minwon.moel.go.kr/minwon2008/faq/faq_list.do",
	},
	{
		Text:     "회사가 폐업해서 밀린 월급을 받을 곳이 없습니다.",
		Audience: core.AudienceWorker,
		Source:   "근로복지공단 대지급금 안내",
		URL:      "https://www.comwel.or.kr",
	},
	{
		Text:     "해고예고수당은 언제 받을 수 있나요?",
		Audience: core.AudienceWorker,
		Source:   "고용노동부 민원 FAQ",
		URL:      "https://minwon.moel.go.kr/minwon2008/faq/faq_list.do",
	},
	{
		Text:     "직장 내 괴롭힘을 당했을 때 회사에 신고하면 불이익이 없나요?",
		Audience: core.AudienceWorker,
		Source:   "고용노동부 직장 내 괴롭힘 상담",
		URL:      "https://www.moel.go.kr",
	},
	{
		Text:     "출퇴근 중 사고도 산재 처리가 되나요?",
		Audience: core.AudienceWorker,
		Source:   "근로복지공단 산재 FAQ",
		URL:      "https://www.comwel.or.kr",
	},
	{
		Text:     "상시 10인 이상이 되면 취업규칙을 꼭 만들어야 하나요?",
		Audience: core.AudienceEmployer,
		Source:   "고용노동부 기업 지원 FAQ",
		URL:      "https://www.moel.go.kr",
	},
	{
		Text:     "직원 4대보험 취득 신고 기한이 어떻게 되나요?",
		Audience: core.AudienceEmployer,
		Source:   "4대사회보험 정보연계센터",
		URL:      "https://www.4insure.or.kr",
	},
}

// Manual fillers keep plain, keyword-free phrasings in the mix.
var fillerQuestions = []Question{
	{Text: "회사 일로 상의하고 싶은 게 있어요.", Audience: core.AudienceWorker},
	{Text: "노무 관련해서 전반적으로 물어보고 싶습니다.", Audience: core.AudienceWorker},
	{Text: "사업장 운영하면서 궁금한 점이 있습니다.", Audience: core.AudienceEmployer},
}
