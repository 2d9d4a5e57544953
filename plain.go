package poster

import (
	"github.com/gogpu/gg"
)

// Plain is the flat recruitment poster on a white page.
type Plain struct{}

// PlainRequirements and PlainBenefits drive the two content cards.
var (
	PlainRequirements = []ListItem{
		{Text: "Thành thạo tin học văn phòng (Excel, Word)", Color: TextDark},
		{Text: "Nhanh nhẹn, làm việc cẩn thận, có trách nhiệm", Color: TextDark},
		{Text: "Ưu tiên có kinh nghiệm làm việc trong ngành may mặc", Color: TextDark},
		{Text: "Có khả năng làm việc độc lập và theo nhóm", Color: TextDark},
	}
	PlainBenefits = []ListItem{
		{Text: "Môi trường làm việc chuyên nghiệp, năng động", Color: TextDark},
		{Text: "Đầy đủ các chế độ theo quy định", Color: TextDark},
		{Text: "Cơ hội phát triển nghề nghiệp", Color: TextDark},
		{Text: "Chế độ bảo hiểm xã hội đầy đủ", Color: TextDark},
	}
)

func (Plain) Name() string { return "plain" }

func (Plain) FaceColor() gg.RGBA { return PlainPaper }

func (p Plain) Build(c *Canvas) {
	p.header(c)
	p.hero(c)
	p.cards(c)
	p.footer(c)
}

func (Plain) header(c *Canvas) {
	c.Add(
		RoundBox{X: 0.05, Y: 0.78, W: 0.9, H: 0.15, Pad: 0.02, Style: Style{Fill: PrimaryBlue}},
		Circle{X: 0.15, Y: 0.855, R: 0.025, Style: Style{Fill: White, Opacity: 0.2}},
		TextLabel{Text: "BH", X: 0.15, Y: 0.855, Size: 18, Weight: WeightBold, Color: White, Align: AlignCenter},
		TextLabel{Text: "CÔNG TY CP MAY BHAD", X: 0.22, Y: 0.875, Size: 14, Weight: WeightBold, Color: White},
		TextLabel{Text: "QUẢNG HÙNG", X: 0.22, Y: 0.835, Size: 11, Weight: WeightNormal, Color: White, Opacity: 0.9},
		TextLabel{Text: "Liên hệ:", X: 0.85, Y: 0.875, Size: 10, Weight: WeightSemiBold, Color: White, Opacity: 0.9, Align: AlignRight},
		TextLabel{Text: "Ms Huyền: 0912.776718", X: 0.85, Y: 0.845, Size: 12, Weight: WeightBold, Color: AccentYellow, Align: AlignRight},

		RoundBox{X: 0.82, Y: 0.93, W: 0.15, H: 0.04, Pad: 0.01, Style: Style{Fill: AccentYellow}},
		TextLabel{Text: "TUYỂN GẤP", X: 0.895, Y: 0.95, Size: 9, Weight: WeightBold, Color: TextDark, Align: AlignCenter},
	)
}

func (Plain) hero(c *Canvas) {
	c.Add(
		RoundBox{X: 0.05, Y: 0.58, W: 0.9, H: 0.18, Pad: 0.02, Style: Style{Fill: PaleBlue}},
		TextLabel{Text: "TUYỂN DỤNG", X: 0.5, Y: 0.71, Size: 36, Weight: WeightExtraBold, Color: PrimaryBlue, Align: AlignCenter},
		Rect{X: 0.43, Y: 0.675, W: 0.14, H: 0.008, Style: Style{Fill: AccentYellow}},
		TextLabel{Text: "KẾ TOÁN TỔNG HỢP", X: 0.5, Y: 0.635, Size: 24, Weight: WeightBold, Color: TextDark, Align: AlignCenter},

		RoundBox{X: 0.3, Y: 0.6, W: 0.4, H: 0.05, Pad: 0.01, Style: Style{
			Fill: White, Edge: PrimaryBlue, EdgeWidth: 1.5, Opacity: 0.9,
		}},
		TextLabel{Text: "📊 SỐ LƯỢNG: 02 NGƯỜI", X: 0.5, Y: 0.625, Size: 13, Weight: WeightSemiBold, Color: PrimaryBlue, Align: AlignCenter},
	)
}

func (Plain) cards(c *Canvas) {
	card := Style{Fill: White, Edge: LightGray, EdgeWidth: 1}

	c.Add(
		RoundBox{X: 0.05, Y: 0.16, W: 0.42, H: 0.38, Pad: 0.02, Style: card},
		TextLabel{Text: "● Yêu Cầu Ứng Viên", X: 0.26, Y: 0.51, Size: 14, Weight: WeightSemiBold, Color: PrimaryBlue, Align: AlignCenter},
	)
	c.Add(List{
		TextX: 0.08, Y: 0.47, Step: 0.06, Prefix: "• ",
		FontSize: 11, Weight: WeightNormal, TextColor: TextDark,
	}.Drawables(PlainRequirements)...)

	c.Add(
		RoundBox{X: 0.53, Y: 0.16, W: 0.42, H: 0.38, Pad: 0.02, Style: card},
		TextLabel{Text: "● Quyền Lợi & Thu Nhập", X: 0.74, Y: 0.51, Size: 14, Weight: WeightSemiBold, Color: PrimaryBlue, Align: AlignCenter},

		RoundBox{X: 0.57, Y: 0.45, W: 0.34, H: 0.08, Pad: 0.01, Style: Style{Fill: AccentYellow}},
		TextLabel{Text: "Thu nhập", X: 0.74, Y: 0.495, Size: 9, Weight: WeightSemiBold, Color: TextDark, Align: AlignCenter},
		TextLabel{Text: "Thỏa thuận", X: 0.74, Y: 0.465, Size: 16, Weight: WeightExtraBold, Color: TextDark, Align: AlignCenter},
	)
	c.Add(List{
		TextX: 0.57, Y: 0.39, Step: 0.06, Prefix: "★ ",
		FontSize: 11, Weight: WeightNormal, TextColor: TextDark,
	}.Drawables(PlainBenefits)...)
}

func (Plain) footer(c *Canvas) {
	c.Add(
		RoundBox{X: 0.05, Y: 0.02, W: 0.9, H: 0.12, Pad: 0.02, Style: Style{Fill: PrimaryBlue}},
		RoundBox{X: 0.2, Y: 0.09, W: 0.6, H: 0.08, Pad: 0.02, Style: Style{
			Fill: White, Edge: White, EdgeWidth: 1, Opacity: 0.15,
		}},
		TextLabel{Text: "NỘP HỒ SƠ & LIÊN HỆ", X: 0.5, Y: 0.13, Size: 16, Weight: WeightBold, Color: White, Align: AlignCenter},
		TextLabel{Text: "Ms. Huyền: 0912.776718", X: 0.5, Y: 0.105, Size: 15, Weight: WeightSemiBold, Color: AccentYellow, Align: AlignCenter},
		TextLabel{
			Text: "📍 Địa chỉ: Thôn 3, Quảng Hùng, Quảng Lưu, TP Sầm Sơn, Thanh Hóa",
			X:    0.5, Y: 0.05, Size: 10, Weight: WeightNormal, Color: White, Opacity: 0.9, Align: AlignCenter,
		},
		TextLabel{Text: "CÔNG TY CP MAY BHAD - QUẢNG HÙNG", X: 0.5, Y: 0.025, Size: 12, Weight: WeightSemiBold, Color: White, Align: AlignCenter},
	)
}
