package catalog

import "github.com/laborlink/matchcore/core"

// Canonical service names. Seed data, override rules and the autofix
// mapping all refer to these.
const (
	ServiceWageClaim          = "임금체불 진정 대리"
	ServiceAdvancePay         = "대지급금 청구 대리"
	ServiceDismissalRemedy    = "부당해고 구제신청 대리"
	ServiceHarassmentReport   = "직장 내 괴롭힘 신고 지원"
	ServiceAccidentClaim      = "산재보상 신청 대리"
	ServiceContractReview     = "근로계약서 검토"
	ServiceGeneralConsult     = "노무 종합 상담"
	ServiceWorkRules          = "취업규칙 작성·변경"
	ServicePayrollOutsource   = "급여 아웃소싱"
	ServiceSocialInsurance    = "4대보험 업무 대행"
	ServiceHarassmentTraining = "직장 내 괴롭힘 예방 교육"
	ServiceHRAdvisory         = "인사노무 자문"
)

// GenericService is the catch-all consultation offering. It exists for both
// audiences and is demoted whenever the input names a specific issue.
const GenericService = ServiceGeneralConsult

var defaultEntries = []core.ServiceEntry{
	{
		Name:        ServiceWageClaim,
		Description: "밀린 임금과 퇴직금을 받기 위한 노동청 진정 제기를 대리합니다.",
		Audience:    core.AudienceWorker,
		Keywords:    []string{"임금체불", "월급", "급여", "퇴직금", "체불", "밀린 월급"},
	},
	{
		Name:        ServiceAdvancePay,
		Description: "도산·폐업 사업장의 체불 임금을 국가가 대신 지급하는 대지급금 청구를 대리합니다.",
		Audience:    core.AudienceWorker,
		Keywords:    []string{"대지급금", "체당금", "도산", "폐업", "파산"},
	},
	{
		Name:        ServiceDismissalRemedy,
		Description: "부당한 해고·징계에 대한 노동위원회 구제신청을 대리합니다.",
		Audience:    core.AudienceWorker,
		Keywords:    []string{"부당해고", "해고", "권고사직", "징계", "복직"},
	},
	{
		Name:        ServiceHarassmentReport,
		Description: "직장 내 괴롭힘과 성희롱 사건의 신고·조사 대응을 지원합니다.",
		Audience:    core.AudienceWorker,
		Keywords:    []string{"괴롭힘", "직장 내 괴롭힘", "폭언", "따돌림", "성희롱"},
	},
	{
		Name:        ServiceAccidentClaim,
		Description: "업무상 재해에 대한 산재 요양·보상 신청을 대리합니다.",
		Audience:    core.AudienceWorker,
		Keywords:    []string{"산재", "산업재해", "업무상 재해", "요양급여", "출퇴근 재해"},
	},
	{
		Name:        ServiceContractReview,
		Description: "근로계약서와 연봉계약서의 불리한 조항을 검토합니다.",
		Audience:    core.AudienceWorker,
		Keywords:    []string{"근로계약서", "근로계약", "연봉계약", "계약 조건", "수습"},
	},
	{
		Name:        ServiceGeneralConsult,
		Description: "노동 문제 전반에 대한 일반 상담을 제공합니다.",
		Audience:    core.AudienceWorker,
		Keywords:    []string{"상담", "문의", "기타"},
	},
	{
		Name:        ServiceWorkRules,
		Description: "취업규칙의 작성과 불이익 변경 절차를 대행합니다.",
		Audience:    core.AudienceEmployer,
		Keywords:    []string{"취업규칙", "사규", "인사규정", "불이익 변경"},
	},
	{
		Name:        ServicePayrollOutsource,
		Description: "급여 계산과 명세서 발급, 원천세 신고를 대행합니다.",
		Audience:    core.AudienceEmployer,
		Keywords:    []string{"급여 계산", "급여 대장", "명세서", "아웃소싱", "연말정산"},
	},
	{
		Name:        ServiceSocialInsurance,
		Description: "4대보험 취득·상실 신고와 보수총액 신고를 대행합니다.",
		Audience:    core.AudienceEmployer,
		Keywords:    []string{"4대보험", "취득 신고", "상실 신고", "보수총액", "건강보험"},
	},
	{
		Name:        ServiceHarassmentTraining,
		Description: "법정 의무교육인 직장 내 괴롭힘 예방 교육을 제공합니다.",
		Audience:    core.AudienceEmployer,
		Keywords:    []string{"예방 교육", "법정 의무교육", "괴롭힘 예방"},
	},
	{
		Name:        ServiceHRAdvisory,
		Description: "채용부터 퇴직까지 인사노무 현안에 대한 월 자문을 제공합니다.",
		Audience:    core.AudienceEmployer,
		Keywords:    []string{"자문", "인사", "채용", "노무관리", "징계 절차"},
	},
	{
		Name:        ServiceGeneralConsult,
		Description: "사업장 노무 현안 전반에 대한 일반 상담을 제공합니다.",
		Audience:    core.AudienceEmployer,
		Keywords:    []string{"상담", "문의", "기타"},
	},
}

// Default returns the built-in catalog. A deployment normally loads the
// catalog from the collaborator's artifact; the built-in set keeps the CLI
// and tests usable without one.
func Default() *Catalog {
	entries := make([]core.ServiceEntry, len(defaultEntries))
	copy(entries, defaultEntries)
	return New(entries)
}
