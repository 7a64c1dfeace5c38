package ai

import "fmt"

// Category is one of the four generated content kinds.
type Category string

const (
	CategoryChecklist Category = "checklist"
	CategoryItems     Category = "items"
	CategoryLocalInfo Category = "local_info"
	CategoryWishlist  Category = "wishlist"
)

// Categories returns the generation order used by the orchestrator.
func Categories() []Category {
	return []Category{CategoryChecklist, CategoryItems, CategoryLocalInfo, CategoryWishlist}
}

// PromptInput carries the trip context substituted into the templates.
// Empty fields degrade to empty substitutions; no validation is performed.
type PromptInput struct {
	Destination string
	Days        int
	Season      string
	TravelStyle string
}

// ConnectionTestPrompt is a tiny prompt used to probe vendor reachability.
const ConnectionTestPrompt = "안녕하세요! 간단한 연결 테스트입니다. '연결 성공'이라고 답해주세요."

// BuildPrompt renders the instruction template for a category.
func BuildPrompt(category Category, in PromptInput) string {
	switch category {
	case CategoryChecklist:
		return fmt.Sprintf(checklistPrompt, in.Destination, in.Days, in.Season, in.TravelStyle)
	case CategoryItems:
		return fmt.Sprintf(itemsPrompt, in.Destination, in.Days, in.Season, in.TravelStyle)
	case CategoryLocalInfo:
		return fmt.Sprintf(localInfoPrompt, in.Destination, in.Days, in.Season)
	case CategoryWishlist:
		return fmt.Sprintf(wishlistPrompt, in.Destination, in.Days, in.Season, in.TravelStyle, in.Days)
	}
	return ""
}

const checklistPrompt = `다음 여행 정보를 바탕으로 실용적인 체크리스트를 생성해주세요:
- 목적지: %s
- 여행 기간: %d일
- 계절: %s
- 여행 스타일: %s

카테고리별로 체크리스트를 만들어주세요:
1. 출발 전 (3-5개)
2. 1일차 (2-3개)
3. 2일차 (여행이 3일 이상인 경우)
4. 3일차 (여행이 5일 이상인 경우)
5. 귀국 후 (1-2개)

각 항목은 다음 형식으로 반환해주세요:
{"category": "출발 전", "title": "여권 유효기간 확인", "priority": "high", "description": "6개월 이상 남아있는지 확인"}

실제 여행에서 놓치기 쉬운 중요한 사항들을 포함해주세요.
다른 설명 없이 JSON 배열만 응답해주세요.`

const itemsPrompt = `다음 여행 정보를 바탕으로 필수 준비물품을 추천해주세요:
- 목적지: %s
- 여행 기간: %d일
- 계절: %s
- 여행 스타일: %s

카테고리별로 준비물을 분류해주세요:
1. 서류 (여권, 비자 등)
2. 의류 (현지 날씨와 문화 고려)
3. 용품 (현지에서 구하기 어려운 것들)
4. 약품 (현지 특성 고려)
5. 전자기기 (현지 전압, 인터넷 등 고려)

각 항목은 다음 형식으로 반환해주세요:
{"category": "의류", "name": "방수 재킷", "quantity": 1, "notes": "우기철 필수품"}

현지 특성을 반영한 실용적인 물품들을 추천해주세요.
다른 설명 없이 JSON 배열만 응답해주세요.`

const localInfoPrompt = `다음 목적지에 대한 실용적인 현지 정보를 제공해주세요:
- 목적지: %s
- 여행 기간: %d일
- 계절: %s

다음 카테고리별로 정보를 제공해주세요:
1. 환율 (현재 환율 정보)
2. 긴급연락처 (영사관, 응급실 등)
3. 교통수단 (추천 앱, 교통카드 등)
4. 맛집 (현지 특색 음식 2-3곳)
5. 기타 (팁 문화, 주의사항 등)

각 정보는 다음 형식으로 반환해주세요:
{"category": "환율", "title": "현지 화폐", "content": "1달러 = 1300원 (변동)", "rating": null, "phone": null, "address": null}

최신이고 정확한 정보를 제공해주세요.
다른 설명 없이 JSON 배열만 응답해주세요.`

const wishlistPrompt = `다음 목적지의 여행자들이 꼭 가봐야 할 장소들을 추천해주세요:
- 목적지: %s
- 여행 기간: %d일
- 계절: %s
- 여행 스타일: %s

다음 카테고리별로 추천해주세요:
1. 관광지 (대표 명소)
2. 맛집 (현지 특색 음식점)
3. 체험 (현지만의 특별한 활동)
4. 쇼핑 (기념품, 특산품)
5. 기타 (숨은 명소)

여행 기간에 맞게 우선순위를 설정해주세요 (%d일 여행).

각 장소는 다음 형식으로 반환해주세요:
{"place_name": "에펠탑", "category": "관광지", "description": "파리의 상징적 랜드마크", "priority": "high", "address": "파리 7구"}

현지인들도 추천하는 진정성 있는 장소들을 포함해주세요.
다른 설명 없이 JSON 배열만 응답해주세요.`
