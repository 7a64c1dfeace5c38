package ai

import (
	"context"
	"strings"
)

// Simulator returns hand-written canned JSON arrays without any network I/O.
// It is the default vendor and the safety net when a real vendor is
// misconfigured or unreachable: the output is always a well-formed array.
type Simulator struct{}

func NewSimulator() *Simulator { return &Simulator{} }

func (s *Simulator) Name() string { return "simulation" }

// GenerateCompletion selects a canned response by keyword matching inside the
// prompt text. Unrecognized prompts yield an empty array, never an error.
func (s *Simulator) GenerateCompletion(_ context.Context, prompt string, _ Options) (string, error) {
	lower := strings.ToLower(prompt)
	switch {
	case strings.Contains(prompt, "체크리스트") || strings.Contains(lower, "checklist"):
		return simulatedChecklist, nil
	case strings.Contains(prompt, "준비물") || strings.Contains(lower, "items"):
		return simulatedItems, nil
	case strings.Contains(prompt, "현지정보") || strings.Contains(prompt, "현지 정보") || strings.Contains(lower, "local"):
		return simulatedLocalInfo, nil
	case strings.Contains(prompt, "위시리스트") || strings.Contains(prompt, "가봐야 할 장소") || strings.Contains(lower, "wishlist"):
		return simulatedWishlist, nil
	}
	return "[]", nil
}

const simulatedChecklist = `[
    {"category": "출발 전", "title": "현지 날씨 확인", "priority": "high", "description": "여행 기간 동안의 날씨 예보 확인"},
    {"category": "출발 전", "title": "현지 화폐 환전", "priority": "medium", "description": "소액 현금 미리 준비"},
    {"category": "출발 전", "title": "여행자 보험 가입", "priority": "high", "description": "의료비 및 여행 취소 보장"},
    {"category": "1일차", "title": "현지 심카드 구매", "priority": "medium", "description": "공항이나 편의점에서 구매"},
    {"category": "1일차", "title": "교통카드 발급", "priority": "medium", "description": "대중교통 이용을 위한 카드"},
    {"category": "귀국 후", "title": "사진 백업", "priority": "low", "description": "여행 사진 정리 및 백업"}
]`

const simulatedItems = `[
    {"category": "서류", "name": "여권 사본", "quantity": 2, "notes": "분실 대비용"},
    {"category": "의류", "name": "속건성 의류", "quantity": 3, "notes": "빠른 건조를 위해"},
    {"category": "용품", "name": "휴대용 충전기", "quantity": 1, "notes": "외출 시 필수"},
    {"category": "약품", "name": "지사제", "quantity": 1, "notes": "현지 음식 적응을 위해"},
    {"category": "전자기기", "name": "멀티 어댑터", "quantity": 1, "notes": "현지 콘센트 형태 확인"}
]`

const simulatedLocalInfo = `[
    {"category": "환율", "title": "현지 화폐 환율", "content": "실시간 환율 앱 확인 권장", "rating": null, "phone": null, "address": null},
    {"category": "긴급연락처", "title": "한국 영사관", "content": "24시간 긴급전화", "rating": null, "phone": "+1-000-000-0000", "address": "현지 영사관 주소"},
    {"category": "교통수단", "title": "현지 교통 앱", "content": "Uber, Grab 등 추천", "rating": 4.5, "phone": null, "address": null},
    {"category": "맛집", "title": "현지 특색 음식점", "content": "현지인 추천 맛집", "rating": 4.8, "phone": null, "address": "현지 주소"}
]`

const simulatedWishlist = `[
    {"place_name": "대표 관광명소", "category": "관광지", "description": "현지 대표 랜드마크", "priority": "high", "address": "관광지 주소"},
    {"place_name": "현지 전통시장", "category": "쇼핑", "description": "현지 문화 체험 가능", "priority": "medium", "address": "시장 주소"},
    {"place_name": "현지 특색 체험", "category": "체험", "description": "현지만의 독특한 활동", "priority": "high", "address": "체험 장소"},
    {"place_name": "현지 맛집", "category": "맛집", "description": "현지인들이 자주 가는 곳", "priority": "medium", "address": "맛집 주소"}
]`
