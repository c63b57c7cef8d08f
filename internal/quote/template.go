package quote

// DefaultDocument returns the session-start template: the standard MODOS
// video production quotation. Callers are expected to stamp the current
// date and the next quote number before handing it to the editor.
func DefaultDocument() Document {
	doc := Document{
		QuoteNo:      "QT-2026-001",
		Date:         "14/01/2026",
		CustomerName: "ANH TUẤT - [TÊN CÔNG TY]",
		CompanyName:  "",
		ProjectName:  "APP LAUNCH CAMPAIGN 2026",
		QuoteTitle:   "BẢNG BÁO GIÁ",
		Subtitle:     "DỊCH VỤ SẢN XUẤT VIDEO MARKETING & AI VISUAL",
		CompanyInfo: CompanyInfo{
			Name:    "CÔNG TY CỔ PHẦN MODOS",
			TaxID:   "0319333677",
			Address: "Số 2 Trương Quốc Dung, P.8, Q. Phú Nhuận, TP.HCM",
			Email:   "info@modos.space",
			Phone:   "0559 139 749",
		},
		CustomerRep: Representative{Title: "ĐẠI DIỆN KHÁCH HÀNG", Name: ""},
		CompanyRep:  Representative{Title: "ĐẠI DIỆN MODOS", Name: "Lê Hải Đăng"},
		Groups: []Group{
			{
				ID:       "01",
				Title:    "CREATIVE & SCRIPT",
				Subtitle: "Giai đoạn lập kế hoạch",
				Items: []Item{
					{No: 1, Description: "Phát triển kịch bản (Script) 11 Video", Unit: "Gói", Quantity: 1, UnitPrice: 15000000},
					{No: 2, Description: "Biên tập lời bình (Voice-off)", Unit: "Gói", Quantity: 1, UnitPrice: 0},
					{No: 3, Description: "Storyboard định hướng hình ảnh", Unit: "Gói", Quantity: 1, UnitPrice: 0},
				},
			},
			{
				ID:       "02",
				Title:    "VISUAL ASSETS & AI R&D",
				Subtitle: "Thiết kế và Công nghệ AI",
				Items: []Item{
					{No: 4, Description: "Vẽ minh họa (Illustration) & Icon set", Unit: "Gói", Quantity: 1, UnitPrice: 30000000},
					{No: 5, Description: "Huấn luyện Model AI nhân vật đại diện", Unit: "Gói", Quantity: 1, UnitPrice: 0},
					{No: 6, Description: "Thiết kế bối cảnh ảo (Environment)", Unit: "Gói", Quantity: 1, UnitPrice: 0},
				},
			},
			{
				ID:       "03",
				Title:    "PRODUCTION & ANIMATION",
				Subtitle: "Giai đoạn sản xuất kịch bản",
				Items: []Item{
					{No: 7, Description: "06 Video App (Motion Graphic)", Unit: "Gói", Quantity: 1, UnitPrice: 65000000},
					{No: 8, Description: "04 Video Human AI (VFX/Editing)", Unit: "Gói", Quantity: 1, UnitPrice: 0},
					{No: 9, Description: "01 Video Intro Tổng quan (Premium)", Unit: "Gói", Quantity: 1, UnitPrice: 0},
				},
			},
			{
				ID:       "04",
				Title:    "AUDIO ENGINEERING",
				Subtitle: "Âm thanh và Hậu kỳ",
				Items: []Item{
					{No: 10, Description: "Voice Talent (Giọng thật chuyên nghiệp)", Unit: "Gói", Quantity: 1, UnitPrice: 15000000},
					{No: 11, Description: "Mua bản quyền nhạc nền (BGM)", Unit: "Gói", Quantity: 1, UnitPrice: 0},
					{No: 12, Description: "Thiết kế tiếng động (Sound Design)", Unit: "Gói", Quantity: 1, UnitPrice: 0},
				},
			},
		},
		Notes: []string{
			"Báo giá có hiệu lực trong vòng 15 ngày.",
			"Tiến độ thanh toán: 50% tạm ứng - 30% sau demo - 20% nghiệm thu.",
			"Hiệu chỉnh (Revision): Tối đa 03 lần/video.",
		},
		BankInfo: BankInfo{
			BankName:    "VCB HCM Chi Nhánh Tân Định",
			AccountNo:   "1063709595",
			AccountName: "CT CP MODOS",
		},
		Style: &Style{
			FontFamily:      "Inter",
			HeadingFont:     "Plus Jakarta Sans",
			BodyFontSize:    12,
			HeadingFontSize: 28,
			PrimaryColor:    BrandPrimaryColor,
			SecondaryColor:  BrandSecondaryColor,
			AccentColor:     "#FF7043",
			TextColor:       "#1A1A1A",
			TableStyle:      "modern",
			ShowLogo:        true,
			PaperSize:       "A4",
		},
	}
	Recalculate(&doc)
	return doc
}
