// README: Static starter-content templates used when AI generation is off or fails.
package planner

import (
	"fmt"
	"strings"
)

// TemplateContent builds destination-keyed starter content without calling any
// AI vendor. Longer trips unlock extra entries at 3, 5 and 7 days; well-known
// destinations contribute specialized entries on top of the base set.
func TemplateContent(destination string, days int) Content {
	base := baseContent(days)
	extra := destinationContent(destination, days)

	return Content{
		Checklists: append(base.Checklists, extra.Checklists...),
		Items:      append(base.Items, extra.Items...),
		LocalInfos: append(base.LocalInfos, extra.LocalInfos...),
		Wishlists:  append(base.Wishlists, extra.Wishlists...),
		Expenses:   append(base.Expenses, extra.Expenses...),
	}
}

// DefaultContent is the minimal safety net applied when bulk content insert
// fails during trip creation. Eight basic checklist entries, nothing else.
func DefaultContent() Content {
	return Content{
		Checklists: []Fields{
			{"category": "출발 전", "title": "여권 확인", "priority": "high"},
			{"category": "출발 전", "title": "항공권 예약", "priority": "high"},
			{"category": "출발 전", "title": "숙소 예약", "priority": "high"},
			{"category": "출발 전", "title": "환전", "priority": "medium"},
			{"category": "출발 전", "title": "여행자 보험", "priority": "medium"},
			{"category": "1일차", "title": "숙소 체크인", "priority": "high"},
			{"category": "1일차", "title": "주변 탐색", "priority": "low"},
			{"category": "귀국 후", "title": "사진 정리", "priority": "low"},
		},
	}
}

func baseContent(days int) Content {
	checklists := []Fields{
		{"category": "출발 전", "title": "여권 유효기간 확인", "priority": "high"},
		{"category": "출발 전", "title": "항공권 예약 확인", "priority": "high"},
		{"category": "출발 전", "title": "숙소 예약 확인", "priority": "high"},
		{"category": "출발 전", "title": "여행자 보험 가입", "priority": "medium"},
		{"category": "출발 전", "title": "현지 화폐 환전", "priority": "medium"},
		{"category": "1일차", "title": "숙소 체크인", "priority": "high"},
		{"category": "귀국 후", "title": "사진 정리", "priority": "low"},
	}
	if days >= 3 {
		checklists = append(checklists,
			Fields{"category": "1일차", "title": "현지 교통카드/패스 구매", "priority": "medium"},
			Fields{"category": "2일차", "title": "주요 관광지 방문", "priority": "high"},
		)
	}
	if days >= 5 {
		checklists = append(checklists,
			Fields{"category": "3일차", "title": "현지 맛집 탐방", "priority": "medium"},
			Fields{"category": "3일차", "title": "쇼핑 및 기념품 구매", "priority": "low"},
		)
	}
	if days >= 7 {
		checklists = append(checklists,
			Fields{"category": "출발 전", "title": "장기여행용 약품 준비", "priority": "medium"},
		)
	}

	// Clothing quantity follows the trip length, capped at a week's worth.
	clothingQty := days
	if clothingQty > 7 {
		clothingQty = 7
	}
	items := []Fields{
		{"category": "서류", "name": "여권", "quantity": 1, "notes": "유효기간 6개월 이상"},
		{"category": "서류", "name": "항공권", "quantity": 1, "notes": "모바일 체크인 완료"},
		{"category": "전자기기", "name": "휴대폰 충전기", "quantity": 1, "notes": ""},
		{"category": "약품", "name": "개인상비약", "quantity": 1, "notes": "소화제, 두통약 등"},
		{"category": "의류", "name": "여행용 옷", "quantity": clothingQty, "notes": fmt.Sprintf("%d일 여행용", days)},
	}

	return Content{Checklists: checklists, Items: items}
}

func destinationContent(destination string, days int) Content {
	lower := strings.ToLower(destination)
	switch {
	case containsAny(lower, "세부", "cebu"):
		return cebuContent(days)
	case containsAny(lower, "도쿄", "tokyo", "일본", "japan"):
		return tokyoContent(days)
	case containsAny(lower, "제주", "jeju"):
		return jejuContent(days)
	default:
		return Content{}
	}
}

func containsAny(s string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func cebuContent(days int) Content {
	checklists := []Fields{
		{"category": "출발 전", "title": "수영복 준비", "priority": "high"},
		{"category": "출발 전", "title": "선크림 구매 (SPF50+)", "priority": "high"},
		{"category": "1일차", "title": "심카드 또는 로밍 설정", "priority": "medium"},
	}
	if days >= 2 {
		checklists = append(checklists,
			Fields{"category": "2일차", "title": "오슬롭 고래상어 투어 예약", "priority": "high"},
		)
	}

	wishlists := []Fields{
		{"place_name": "오슬롭 고래상어 투어", "category": "체험", "description": "고래상어와 스노클링", "priority": "high"},
		{"place_name": "카와산 폭포", "category": "관광지", "description": "캐녀닝과 폭포수영", "priority": "high"},
		{"place_name": "템플 오브 리아", "category": "관광지", "description": "힌두 사원", "priority": "medium"},
	}
	if days >= 4 {
		wishlists = append(wishlists,
			Fields{"place_name": "보홀 초콜릿 힐", "category": "관광지", "description": "보홀섬 당일치기", "priority": "medium"},
			Fields{"place_name": "SM 시티 세부", "category": "쇼핑", "description": "대형 쇼핑몰", "priority": "low"},
		)
	}

	return Content{
		Checklists: checklists,
		Items: []Fields{
			{"category": "의류", "name": "수영복", "quantity": 2, "notes": "해변 활동용"},
			{"category": "의류", "name": "썬글라스", "quantity": 1, "notes": "자외선 차단"},
			{"category": "용품", "name": "선크림", "quantity": 1, "notes": "SPF 50 이상"},
			{"category": "용품", "name": "수건", "quantity": 2, "notes": "속건성 여행용"},
			{"category": "용품", "name": "스노클링 장비", "quantity": 1, "notes": "선택사항"},
			{"category": "전자기기", "name": "방수카메라", "quantity": 1, "notes": "수중 촬영용"},
		},
		LocalInfos: []Fields{
			{"category": "환율", "title": "필리핀 페소 환율", "content": "1 PHP ≈ 22원 (변동)"},
			{"category": "긴급연락처", "title": "한국 총영사관", "content": "세부 한국 총영사관", "phone": "+63-32-231-0909", "address": "Cebu City"},
			{"category": "교통수단", "title": "Grab 앱", "content": "동남아 대표 택시 앱", "rating": 4.5},
			{"category": "맛집", "title": "렉촌 맛집", "content": "필리핀 전통 돼지고기 요리", "rating": 4.8},
			{"category": "기타", "title": "날씨", "content": "열대성 기후, 연중 26-32도, 우기 6-11월"},
		},
		Wishlists: wishlists,
	}
}

func tokyoContent(days int) Content {
	checklists := []Fields{
		{"category": "출발 전", "title": "엔화 환전", "priority": "high"},
		{"category": "출발 전", "title": "포켓와이파이 예약", "priority": "medium"},
		{"category": "1일차", "title": "IC카드(Suica/Pasmo) 구매", "priority": "high"},
	}
	if days >= 3 {
		checklists = append(checklists,
			Fields{"category": "2일차", "title": "디즈니랜드/디즈니시 티켓 예약", "priority": "medium"},
		)
	}

	return Content{
		Checklists: checklists,
		Items: []Fields{
			{"category": "의류", "name": "가벼운 외투", "quantity": 1, "notes": "일교차 대비"},
			{"category": "의류", "name": "편한 운동화", "quantity": 1, "notes": "많이 걸어야 함"},
			{"category": "전자기기", "name": "포켓와이파이", "quantity": 1, "notes": "인터넷 연결용"},
			{"category": "용품", "name": "에코백", "quantity": 1, "notes": "비닐봉지 유료"},
		},
		LocalInfos: []Fields{
			{"category": "환율", "title": "엔화 환율", "content": "1 JPY ≈ 9원 (변동)"},
			{"category": "교통수단", "title": "JR 패스", "content": "외국인 전용 무제한 교통패스", "rating": 4.8},
			{"category": "맛집", "title": "스시 잔마이", "content": "유명 스시 체인점", "rating": 4.5},
			{"category": "기타", "title": "팁 문화", "content": "일본은 팁 문화가 없음"},
		},
		Wishlists: []Fields{
			{"place_name": "센소지 절", "category": "관광지", "description": "아사쿠사 전통 사원", "priority": "high"},
			{"place_name": "도쿄 스카이트리", "category": "관광지", "description": "도쿄 랜드마크", "priority": "high"},
			{"place_name": "시부야 교차로", "category": "관광지", "description": "세계 최대 횡단보도", "priority": "medium"},
			{"place_name": "츠키지 시장", "category": "맛집", "description": "신선한 해산물", "priority": "high"},
		},
	}
}

func jejuContent(days int) Content {
	checklists := []Fields{
		{"category": "출발 전", "title": "렌터카 예약", "priority": "high"},
		{"category": "1일차", "title": "렌터카 인수", "priority": "high"},
	}
	if days >= 2 {
		checklists = append(checklists,
			Fields{"category": "2일차", "title": "한라산 등반 준비", "priority": "medium"},
		)
	}

	return Content{
		Checklists: checklists,
		Items: []Fields{
			{"category": "서류", "name": "운전면허증", "quantity": 1, "notes": "렌터카 이용시"},
			{"category": "의류", "name": "등산화", "quantity": 1, "notes": "한라산 등반용"},
			{"category": "의류", "name": "바람막이", "quantity": 1, "notes": "제주 바람 대비"},
			{"category": "용품", "name": "등산 배낭", "quantity": 1, "notes": "당일치기용"},
		},
		LocalInfos: []Fields{
			{"category": "교통수단", "title": "렌터카 업체", "content": "제주공항 내 다수 업체", "rating": 4.0},
			{"category": "맛집", "title": "흑돼지 맛집", "content": "제주 특산품", "rating": 4.7},
			{"category": "기타", "title": "날씨", "content": "바람이 강함, 우산보다 바람막이 추천"},
		},
		Wishlists: []Fields{
			{"place_name": "성산일출봉", "category": "관광지", "description": "UNESCO 세계자연유산", "priority": "high"},
			{"place_name": "한라산", "category": "관광지", "description": "대한민국 최고봉", "priority": "high"},
			{"place_name": "섭지코지", "category": "관광지", "description": "아름다운 해안절벽", "priority": "medium"},
			{"place_name": "제주 올레길", "category": "체험", "description": "트레킹 코스", "priority": "medium"},
		},
	}
}
