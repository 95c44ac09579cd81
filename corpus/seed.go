package corpus

import (
	"github.com/laborlink/matchcore/catalog"
	"github.com/laborlink/matchcore/core"
)

// seedExamples is the hand-curated base corpus. It ships with the binary and
// is merged with the offline learned/autofix artifacts at load time.
var seedExamples = []core.Example{
	// wage arrears
	{
		Text:       "월급이 두 달째 밀렸고 대표가 다음 달에 준다고만 합니다.",
		Audience:   core.AudienceWorker,
		Category:   core.CategoryWageArrears,
		Services:   []string{catalog.ServiceWageClaim, catalog.ServiceAdvancePay},
		Provenance: core.ProvenanceSeed,
	},
	{
		Text:       "퇴사한 지 한 달이 지났는데 퇴직금을 아직 못 받았어요.",
		Audience:   core.AudienceWorker,
		Category:   core.CategoryWageArrears,
		Services:   []string{catalog.ServiceWageClaim},
		Provenance: core.ProvenanceSeed,
	},
	{
		Text:       "야근을 매일 했는데 연장수당을 한 번도 받은 적이 없습니다.",
		Audience:   core.AudienceWorker,
		Category:   core.CategoryWageArrears,
		Services:   []string{catalog.ServiceWageClaim},
		Provenance: core.ProvenanceSeed,
	},
	{
		Text:       "회사가 폐업해서 밀린 월급을 받을 곳이 없어요.",
		Audience:   core.AudienceWorker,
		Category:   core.CategoryWageArrears,
		Services:   []string{catalog.ServiceAdvancePay, catalog.ServiceWageClaim},
		Provenance: core.ProvenanceSeed,
	},
	{
		Text:       "사장이 잠적해서 석 달치 급여를 못 받고 있습니다.",
		Audience:   core.AudienceWorker,
		Category:   core.CategoryWageArrears,
		Services:   []string{catalog.ServiceWageClaim, catalog.ServiceAdvancePay},
		Provenance: core.ProvenanceSeed,
	},
	// dismissal
	{
		Text:       "어제 갑자기 내일부터 나오지 말라는 통보를 받았습니다.",
		Audience:   core.AudienceWorker,
		Category:   core.CategoryDismissal,
		Services:   []string{catalog.ServiceDismissalRemedy},
		Provenance: core.ProvenanceSeed,
	},
	{
		Text:       "회사가 권고사직서에 서명하라고 계속 압박합니다.",
		Audience:   core.AudienceWorker,
		Category:   core.CategoryDismissal,
		Services:   []string{catalog.ServiceDismissalRemedy},
		Provenance: core.ProvenanceSeed,
	},
	{
		Text:       "이유도 듣지 못하고 해고됐는데 복직할 방법이 있을까요.",
		Audience:   core.AudienceWorker,
		Category:   core.CategoryDismissal,
		Services:   []string{catalog.ServiceDismissalRemedy},
		Provenance: core.ProvenanceSeed,
	},
	{
		Text:       "수습 기간이 끝나자마자 일방적으로 계약 종료 통보를 받았어요.",
		Audience:   core.AudienceWorker,
		Category:   core.CategoryDismissal,
		Services:   []string{catalog.ServiceDismissalRemedy, catalog.ServiceContractReview},
		Provenance: core.ProvenanceSeed,
	},
	// harassment
	{
		Text:       "팀장이 회의 때마다 모두 앞에서 폭언을 합니다.",
		Audience:   core.AudienceWorker,
		Category:   core.CategoryHarassment,
		Services:   []string{catalog.ServiceHarassmentReport},
		Provenance: core.ProvenanceSeed,
	},
	{
		Text:       "부서에서 저만 따돌리고 업무에서 배제하고 있어요.",
		Audience:   core.AudienceWorker,
		Category:   core.CategoryHarassment,
		Services:   []string{catalog.ServiceHarassmentReport},
		Provenance: core.ProvenanceSeed,
	},
	{
		Text:       "상사의 성희롱 발언을 회사에 신고했는데 아무 조치가 없습니다.",
		Audience:   core.AudienceWorker,
		Category:   core.CategoryHarassment,
		Services:   []string{catalog.ServiceHarassmentReport},
		Provenance: core.ProvenanceSeed,
	},
	// industrial accident
	{
		Text:       "작업 중에 허리를 다쳤는데 회사가 산재 처리를 안 해줍니다.",
		Audience:   core.AudienceWorker,
		Category:   core.CategoryIndustrialAccident,
		Services:   []string{catalog.ServiceAccidentClaim},
		Provenance: core.ProvenanceSeed,
	},
	{
		Text:       "출근길 교통사고도 산재로 인정받을 수 있나요.",
		Audience:   core.AudienceWorker,
		Category:   core.CategoryIndustrialAccident,
		Services:   []string{catalog.ServiceAccidentClaim},
		Provenance: core.ProvenanceSeed,
	},
	{
		Text:       "공장에서 기계에 손을 다쳐 치료비가 걱정입니다.",
		Audience:   core.AudienceWorker,
		Category:   core.CategoryIndustrialAccident,
		Services:   []string{catalog.ServiceAccidentClaim},
		Provenance: core.ProvenanceSeed,
	},
	// contract
	{
		Text:       "근로계약서를 아직 쓰지 않았는데 불리한 조건을 요구받고 있어요.",
		Audience:   core.AudienceWorker,
		Category:   core.CategoryContract,
		Services:   []string{catalog.ServiceContractReview},
		Provenance: core.ProvenanceSeed,
	},
	{
		Text:       "연봉계약서에 포괄임금 조항이 있는데 검토를 받고 싶습니다.",
		Audience:   core.AudienceWorker,
		Category:   core.CategoryContract,
		Services:   []string{catalog.ServiceContractReview},
		Provenance: core.ProvenanceSeed,
	},
	// worker / other
	{
		Text:       "노동 문제인지 아닌지도 잘 모르겠는데 상담을 받고 싶어요.",
		Audience:   core.AudienceWorker,
		Category:   core.CategoryOther,
		Services:   []string{catalog.ServiceGeneralConsult},
		Provenance: core.ProvenanceSeed,
	},
	// employer
	{
		Text:       "직원이 열 명을 넘어서 취업규칙을 새로 만들어야 합니다.",
		Audience:   core.AudienceEmployer,
		Category:   core.CategoryContract,
		Services:   []string{catalog.ServiceWorkRules},
		Provenance: core.ProvenanceSeed,
	},
	{
		Text:       "급여 계산과 명세서 발급을 맡길 곳을 찾고 있습니다.",
		Audience:   core.AudienceEmployer,
		Category:   core.CategoryOther,
		Services:   []string{catalog.ServicePayrollOutsource},
		Provenance: core.ProvenanceSeed,
	},
	{
		Text:       "신규 직원 4대보험 취득 신고를 대신 처리해 주실 수 있나요.",
		Audience:   core.AudienceEmployer,
		Category:   core.CategoryOther,
		Services:   []string{catalog.ServiceSocialInsurance},
		Provenance: core.ProvenanceSeed,
	},
	{
		Text:       "직장 내 괴롭힘 예방 교육을 사업장에서 진행하고 싶습니다.",
		Audience:   core.AudienceEmployer,
		Category:   core.CategoryHarassment,
		Services:   []string{catalog.ServiceHarassmentTraining},
		Provenance: core.ProvenanceSeed,
	},
	{
		Text:       "문제 직원 징계 절차를 어떻게 밟아야 하는지 자문이 필요합니다.",
		Audience:   core.AudienceEmployer,
		Category:   core.CategoryOther,
		Services:   []string{catalog.ServiceHRAdvisory},
		Provenance: core.ProvenanceSeed,
	},
	{
		Text:       "사업장 인사 규정 전반을 점검받고 싶습니다.",
		Audience:   core.AudienceEmployer,
		Category:   core.CategoryContract,
		Services:   []string{catalog.ServiceHRAdvisory, catalog.ServiceWorkRules},
		Provenance: core.ProvenanceSeed,
	},
}

// Seed returns a copy of the curated seed examples.
func Seed() []core.Example {
	out := make([]core.Example, len(seedExamples))
	copy(out, seedExamples)
	return out
}
