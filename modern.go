package poster

import (
	"errors"

	"github.com/gogpu/gg"
)

// The photo and its overlay cover the page from photoBottom to the top.
const (
	photoBottom    = 0.4
	photoOpacity   = 0.7
	overlayOpacity = 0.6
)

const (
	bulletRadius      = 0.012
	starRadius        = 0.015
	markerOpacity     = 0.8
	decorationOpacity = 0.6
)

// Modern is the card-style poster with an optional background photo.
// A nil Background renders the gradient overlay alone.
type Modern struct {
	Background *Background
}

// ModernRequirements and ModernBenefits drive the two content cards;
// each row's color paints its marker.
var (
	ModernRequirements = []ListItem{
		{Text: "Thành thạo tin học văn phòng (Excel, Word)", Color: AccentBlue},
		{Text: "Nhanh nhẹn, làm việc cẩn thận, có trách nhiệm", Color: AccentPurple},
		{Text: "Ưu tiên có kinh nghiệm làm việc trong ngành may mặc", Color: AccentOrange},
		{Text: "Có khả năng làm việc độc lập và theo nhóm", Color: PrimaryBlue},
	}
	ModernBenefits = []ListItem{
		{Text: "Môi trường làm việc chuyên nghiệp, năng động", Color: AccentBlue},
		{Text: "Đầy đủ các chế độ theo quy định", Color: AccentPurple},
		{Text: "Cơ hội phát triển nghề nghiệp", Color: AccentOrange},
		{Text: "Chế độ bảo hiểm xã hội đầy đủ", Color: PrimaryBlue},
	}
)

// NewModern tries to load the background photo at path. Any failure is
// swallowed: the layout then renders without the photo.
func NewModern(path string) *Modern {
	bg, err := LoadBackground(path, BackgroundWidth, BackgroundHeight)
	if err != nil {
		if !errors.Is(err, ErrBackgroundUnavailable) {
			Logger().Warn("poster: unexpected background error", "err", err)
		}
		Logger().Debug("poster: rendering without background", "err", err)
		return &Modern{}
	}
	return &Modern{Background: bg}
}

func (Modern) Name() string { return "modern" }

func (Modern) FaceColor() gg.RGBA { return ModernPaper }

func (m Modern) Build(c *Canvas) {
	m.backdrop(c)
	m.header(c)
	m.hero(c)
	m.cards(c)
	m.footer(c)
	m.decorations(c)
}

func (m Modern) backdrop(c *Canvas) {
	if m.Background != nil {
		c.Add(ImageLayer{
			Image:   m.Background.Image,
			X:       0,
			Y:       photoBottom,
			W:       1,
			H:       1 - photoBottom,
			Opacity: photoOpacity,
		})
	}
	c.Add(BluesOverlay(photoBottom, overlayOpacity))
}

func (Modern) header(c *Canvas) {
	c.Add(
		RoundBox{X: 0.1, Y: 0.82, W: 0.8, H: 0.15, Pad: 0.02, Style: Style{
			Fill: PrimaryBlue, Edge: White, EdgeWidth: 2, Opacity: 0.95,
		}},
		Circle{X: 0.2, Y: 0.895, R: 0.04, Style: Style{
			Fill: AccentOrange, Edge: White, EdgeWidth: 2, Opacity: 0.9,
		}},
		TextLabel{Text: "BH", X: 0.2, Y: 0.895, Size: 16, Weight: WeightExtraBold, Color: White, Align: AlignCenter},
		TextLabel{Text: "CÔNG TY CP MAY BHAD", X: 0.35, Y: 0.915, Size: 13, Weight: WeightExtraBold, Color: White},
		TextLabel{Text: "QUẢNG HÙNG", X: 0.35, Y: 0.88, Size: 11, Weight: WeightMedium, Color: AccentBlue},

		RoundBox{X: 0.7, Y: 0.84, W: 0.25, H: 0.08, Pad: 0.01, Style: Style{
			Fill: White, Edge: AccentOrange, EdgeWidth: 1.5, Opacity: 0.9,
		}},
		TextLabel{Text: "Liên hệ: Ms Huyền", X: 0.825, Y: 0.89, Size: 9, Weight: WeightSemiBold, Color: PrimaryBlue, Align: AlignCenter},
		TextLabel{Text: "0912.776718", X: 0.825, Y: 0.855, Size: 11, Weight: WeightExtraBold, Color: AccentOrange, Align: AlignCenter},

		RoundBox{X: 0.8, Y: 0.95, W: 0.15, H: 0.04, Pad: 0.01, Style: Style{
			Fill: AccentOrange, Edge: White, EdgeWidth: 2, Opacity: 0.95,
		}},
		TextLabel{Text: "TUYỂN GẤP!", X: 0.875, Y: 0.97, Size: 9, Weight: WeightBlack, Color: White, Align: AlignCenter},
	)
}

func (Modern) hero(c *Canvas) {
	c.Add(
		RoundBox{X: 0.15, Y: 0.62, W: 0.7, H: 0.12, Pad: 0.03, Style: Style{
			Fill: AccentPurple, Edge: AccentPurple, EdgeWidth: 3, Opacity: 0.9,
		}},
		TextLabel{Text: "TUYỂN DỤNG", X: 0.5, Y: 0.71, Size: 28, Weight: WeightBlack, Color: White, Align: AlignCenter},

		RoundBox{X: 0.2, Y: 0.66, W: 0.6, H: 0.06, Pad: 0.01, Style: Style{
			Fill: White, Edge: AccentBlue, EdgeWidth: 2, Opacity: 0.95,
		}},
		TextLabel{Text: "KẾ TOÁN TỔNG HỢP", X: 0.5, Y: 0.69, Size: 18, Weight: WeightExtraBold, Color: PrimaryBlue, Align: AlignCenter},

		RoundBox{X: 0.3, Y: 0.585, W: 0.4, H: 0.035, Pad: 0.008, Style: Style{
			Fill: LightOrange, Edge: AccentOrange, EdgeWidth: 2, Opacity: 0.9,
		}},
		TextLabel{Text: "SỐ LƯỢNG: 02 NGƯỜI", X: 0.5, Y: 0.602, Size: 12, Weight: WeightBold, Color: AccentOrange, Align: AlignCenter},

		Circle{X: 0.85, Y: 0.68, R: 0.03, Style: Style{Fill: AccentBlue, Opacity: 0.7}},
		Rect{X: 0.85, Y: 0.62, W: 0.025, H: 0.025, Style: Style{Fill: AccentPurple, Opacity: 0.7}},
	)
}

func (Modern) cards(c *Canvas) {
	c.Add(
		RoundBox{X: 0.1, Y: 0.15, W: 0.35, H: 0.4, Pad: 0.02, Style: Style{
			Fill: White, Edge: PrimaryBlue, EdgeWidth: 2.5, Opacity: 0.95,
		}},
		RoundBox{X: 0.12, Y: 0.51, W: 0.31, H: 0.06, Pad: 0.01, Style: Style{
			Fill: LightBlue, Edge: PrimaryBlue, EdgeWidth: 1,
		}},
		TextLabel{Text: "YÊU CẦU ỨNG VIÊN", X: 0.275, Y: 0.54, Size: 13, Weight: WeightExtraBold, Color: PrimaryBlue, Align: AlignCenter},
	)
	c.Add(List{
		MarkerX: 0.15, TextX: 0.175, Y: 0.49, Step: 0.06,
		Marker: MarkerBullet, MarkerSize: bulletRadius, MarkerOpacity: markerOpacity,
		FontSize: 11, Weight: WeightMedium, TextColor: TextDark,
	}.Drawables(ModernRequirements)...)

	c.Add(
		RoundBox{X: 0.55, Y: 0.15, W: 0.35, H: 0.4, Pad: 0.02, Style: Style{
			Fill: White, Edge: AccentPurple, EdgeWidth: 2.5, Opacity: 0.95,
		}},
		RoundBox{X: 0.57, Y: 0.51, W: 0.31, H: 0.06, Pad: 0.01, Style: Style{
			Fill: LightPurple, Edge: AccentPurple, EdgeWidth: 1,
		}},
		TextLabel{Text: "QUYỀN LỢI & THU NHẬP", X: 0.725, Y: 0.54, Size: 13, Weight: WeightExtraBold, Color: AccentPurple, Align: AlignCenter},

		RoundBox{X: 0.6, Y: 0.44, W: 0.25, H: 0.08, Pad: 0.01, Style: Style{
			Fill: LightOrange, Edge: AccentOrange, EdgeWidth: 2, Opacity: 0.9,
		}},
		TextLabel{Text: "Thu nhập", X: 0.725, Y: 0.485, Size: 10, Weight: WeightBold, Color: AccentOrange, Align: AlignCenter},
		TextLabel{Text: "THỎA THUẬN", X: 0.725, Y: 0.455, Size: 14, Weight: WeightBlack, Color: AccentOrange, Align: AlignCenter},
	)
	c.Add(List{
		MarkerX: 0.6, TextX: 0.625, Y: 0.39, Step: 0.06,
		Marker: MarkerStar, MarkerSize: starRadius, MarkerOpacity: markerOpacity,
		FontSize: 11, Weight: WeightMedium, TextColor: TextDark,
	}.Drawables(ModernBenefits)...)
}

func (Modern) footer(c *Canvas) {
	c.Add(
		RoundBox{X: 0.05, Y: 0.02, W: 0.9, H: 0.12, Pad: 0.02, Style: Style{
			Fill: PrimaryBlue, Edge: AccentBlue, EdgeWidth: 3, Opacity: 0.95,
		}},
		RoundBox{X: 0.15, Y: 0.055, W: 0.7, H: 0.07, Pad: 0.015, Style: Style{
			Fill: White, Edge: AccentOrange, EdgeWidth: 2.5, Opacity: 0.95,
		}},
		TextLabel{Text: "NỘP HỒ SƠ NGAY HÔM NAY", X: 0.5, Y: 0.11, Size: 14, Weight: WeightExtraBold, Color: White, Align: AlignCenter},
		TextLabel{Text: "LIÊN HỆ:", X: 0.5, Y: 0.105, Size: 12, Weight: WeightBold, Color: AccentBlue, Align: AlignCenter},
		TextLabel{Text: "Ms. Huyền: 0912.776718", X: 0.5, Y: 0.065, Size: 16, Weight: WeightBlack, Color: White, Align: AlignCenter},
		TextLabel{
			Text: "Địa chỉ: Thôn 3, Quảng Hùng, Quảng Lưu, TP Sầm Sơn, Thanh Hóa",
			X:    0.5, Y: 0.035, Size: 9, Weight: WeightMedium, Italic: true, Color: AccentBlue, Align: AlignCenter,
		},
		TextLabel{Text: "CÔNG TY CP MAY BHAD - QUẢNG HÙNG", X: 0.5, Y: 0.015, Size: 11, Weight: WeightBold, Color: White, Align: AlignCenter},
	)
}

func (Modern) decorations(c *Canvas) {
	c.Add(
		Circle{X: 0.05, Y: 0.95, R: 0.02, Style: Style{Fill: AccentBlue, Opacity: decorationOpacity}},
		Circle{X: 0.95, Y: 0.5, R: 0.025, Style: Style{Fill: AccentPurple, Opacity: decorationOpacity}},
		Rect{X: 0.92, Y: 0.85, W: 0.03, H: 0.03, Style: Style{Fill: AccentOrange, Opacity: decorationOpacity}},

		Rect{X: 0.1, Y: 0.55, W: 0.35, H: 0.003, Style: Style{Fill: PrimaryBlue, Opacity: 0.8}},
		Rect{X: 0.55, Y: 0.55, W: 0.35, H: 0.003, Style: Style{Fill: AccentPurple, Opacity: 0.8}},
	)
}
