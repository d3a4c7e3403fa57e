package models

// State holds the full set of current option-group values. It is mutated
// only by the host applying user edits; the enumeration engine treats it as
// an immutable snapshot for the duration of one call.
type State struct {
	// Orientation holds layout, sentiment, and breakdown options.
	Orientation OrientationSettings `json:"orientation" yaml:"orientation"`
	// Pillars holds roll-up options.
	Pillars PillarSettings `json:"pillars" yaml:"pillars"`
	// Legend holds legend display options.
	Legend LegendSettings `json:"legend" yaml:"legend"`
	// SentimentColors holds the four sentiment bar color slots.
	SentimentColors SentimentColorSettings `json:"sentiment_colors" yaml:"sentimentColors"`
	// XAxis holds category axis formatting options.
	XAxis XAxisSettings `json:"x_axis" yaml:"xAxis"`
	// YAxis holds value axis formatting options.
	YAxis YAxisSettings `json:"y_axis" yaml:"yAxis"`
	// Labels holds data label formatting options.
	Labels LabelSettings `json:"labels" yaml:"labels"`
	// Margins holds chart margin values.
	Margins MarginSettings `json:"margins" yaml:"margins"`
}

// OrientationSettings holds the orientation group options.
type OrientationSettings struct {
	// Orientation is the bar direction ("vertical" or "horizontal").
	Orientation string `json:"orientation" yaml:"orientation"`
	// UseSentimentFeatures enables sentiment coloring across groups.
	UseSentimentFeatures bool `json:"use_sentiment_features" yaml:"useSentimentFeatures"`
	// SortData enables host-side data sorting.
	SortData bool `json:"sort_data" yaml:"sortData"`
	// LimitBreakdown caps the number of breakdown categories shown.
	LimitBreakdown bool `json:"limit_breakdown" yaml:"limitBreakdown"`
	// MaxBreakdown is the breakdown cap (valid range 1..100).
	MaxBreakdown int `json:"max_breakdown" yaml:"maxBreakdown"`
}

// PillarSettings holds the pillar group options.
type PillarSettings struct {
	// TotalPillar treats the whole series as one total pillar.
	TotalPillar bool `json:"total_pillar" yaml:"totalPillar"`
}

// LegendSettings holds the legend group options.
type LegendSettings struct {
	// Show toggles the legend.
	Show bool `json:"show" yaml:"show"`
	// FavorableText is the legend label for favorable values.
	FavorableText string `json:"favorable_text" yaml:"favorableText"`
	// AdverseText is the legend label for adverse values.
	AdverseText string `json:"adverse_text" yaml:"adverseText"`
	// FontSize is the legend font size in points.
	FontSize float64 `json:"font_size" yaml:"fontSize"`
	// FontColor is the legend font color.
	FontColor string `json:"font_color" yaml:"fontColor"`
	// FontFamily is the legend font family.
	FontFamily string `json:"font_family" yaml:"fontFamily"`
}

// SentimentColorSettings holds the four sentiment color slots.
type SentimentColorSettings struct {
	// Total is the color for total/pillar bars.
	Total string `json:"total" yaml:"total"`
	// Favorable is the color for favorable bars.
	Favorable string `json:"favorable" yaml:"favorable"`
	// Adverse is the color for adverse bars.
	Adverse string `json:"adverse" yaml:"adverse"`
	// Other is the color for the sentinel "other" bucket.
	Other string `json:"other" yaml:"other"`
}

// XAxisSettings holds the category axis group options.
type XAxisSettings struct {
	// FontSize is the axis label font size in points.
	FontSize float64 `json:"font_size" yaml:"fontSize"`
	// FontColor is the axis label font color.
	FontColor string `json:"font_color" yaml:"fontColor"`
	// FontFamily is the axis label font family.
	FontFamily string `json:"font_family" yaml:"fontFamily"`
	// FitToWidth sizes bars to fill the plot width.
	FitToWidth bool `json:"fit_to_width" yaml:"fitToWidth"`
	// LabelWrap wraps long axis labels.
	LabelWrap bool `json:"label_wrap" yaml:"labelWrap"`
	// ShowAngle rotates labels automatically; when off a fixed Angle applies.
	ShowAngle bool `json:"show_angle" yaml:"showAngle"`
	// Angle is the fixed label angle in degrees (valid range -90..90).
	Angle float64 `json:"angle" yaml:"angle"`
	// BarWidth is the fixed bar width (valid range 10..100), used when
	// FitToWidth is off.
	BarWidth float64 `json:"bar_width" yaml:"barWidth"`
	// Padding is the inter-bar padding (valid range 0..20).
	Padding float64 `json:"padding" yaml:"padding"`
	// ShowGridline toggles category axis gridlines.
	ShowGridline bool `json:"show_gridline" yaml:"showGridline"`
	// GridlineWidth is the gridline stroke width (valid range 1..50).
	// Zero means unset; the engine substitutes its caller-supplied default.
	GridlineWidth float64 `json:"gridline_width" yaml:"gridlineWidth"`
	// GridlineColor is the gridline color.
	GridlineColor string `json:"gridline_color" yaml:"gridlineColor"`
}

// YAxisSettings holds the value axis group options.
type YAxisSettings struct {
	// Show toggles the value axis.
	Show bool `json:"show" yaml:"show"`
	// DataPoint selects the datapoint the axis is scaled against.
	DataPoint string `json:"data_point" yaml:"dataPoint"`
	// ShowValues toggles axis value labels.
	ShowValues bool `json:"show_values" yaml:"showValues"`
	// FontSize is the value label font size in points.
	FontSize float64 `json:"font_size" yaml:"fontSize"`
	// FontColor is the value label font color.
	FontColor string `json:"font_color" yaml:"fontColor"`
	// ValueFormat is the display unit for axis values.
	ValueFormat string `json:"value_format" yaml:"valueFormat"`
	// DecimalPlaces is the number of decimals shown (valid range 0..15).
	DecimalPlaces int `json:"decimal_places" yaml:"decimalPlaces"`
	// ShowGridline toggles value axis gridlines.
	ShowGridline bool `json:"show_gridline" yaml:"showGridline"`
	// GridlineWidth is the gridline stroke width (valid range 1..50).
	GridlineWidth float64 `json:"gridline_width" yaml:"gridlineWidth"`
	// GridlineColor is the gridline color.
	GridlineColor string `json:"gridline_color" yaml:"gridlineColor"`
	// ShowZeroLine toggles the zero axis gridline.
	ShowZeroLine bool `json:"show_zero_line" yaml:"showZeroLine"`
	// ZeroLineWidth is the zero line stroke width (valid range 1..50).
	ZeroLineWidth float64 `json:"zero_line_width" yaml:"zeroLineWidth"`
	// ZeroLineColor is the zero line color.
	ZeroLineColor string `json:"zero_line_color" yaml:"zeroLineColor"`
	// JoinBars draws connector lines between consecutive bars.
	JoinBars bool `json:"join_bars" yaml:"joinBars"`
	// JoinBarWidth is the connector stroke width (valid range 1..50).
	JoinBarWidth float64 `json:"join_bar_width" yaml:"joinBarWidth"`
	// JoinBarColor is the connector color.
	JoinBarColor string `json:"join_bar_color" yaml:"joinBarColor"`
}

// SentimentFontColors holds per-sentiment data label font colors.
type SentimentFontColors struct {
	// Total is the font color for total/pillar labels.
	Total string `json:"total" yaml:"total"`
	// Favorable is the font color for favorable labels.
	Favorable string `json:"favorable" yaml:"favorable"`
	// Adverse is the font color for adverse labels.
	Adverse string `json:"adverse" yaml:"adverse"`
	// Other is the font color for sentinel bucket labels.
	Other string `json:"other" yaml:"other"`
}

// SentimentPositions holds per-sentiment data label positions.
type SentimentPositions struct {
	// Total is the position for total/pillar labels.
	Total string `json:"total" yaml:"total"`
	// Favorable is the position for favorable labels.
	Favorable string `json:"favorable" yaml:"favorable"`
	// Adverse is the position for adverse labels.
	Adverse string `json:"adverse" yaml:"adverse"`
	// Other is the position for sentinel bucket labels.
	Other string `json:"other" yaml:"other"`
}

// LabelSettings holds the data label group options.
type LabelSettings struct {
	// Show toggles data labels; when off no other label option is editable.
	Show bool `json:"show" yaml:"show"`
	// FontSize is the label font size in points.
	FontSize float64 `json:"font_size" yaml:"fontSize"`
	// UseDefaultFontColor applies DefaultFontColor to every label.
	UseDefaultFontColor bool `json:"use_default_font_color" yaml:"useDefaultFontColor"`
	// DefaultFontColor is the single label font color.
	DefaultFontColor string `json:"default_font_color" yaml:"defaultFontColor"`
	// SentimentFontColors are the per-sentiment label font colors.
	SentimentFontColors SentimentFontColors `json:"sentiment_font_colors" yaml:"sentimentFontColors"`
	// FontFamily is the label font family.
	FontFamily string `json:"font_family" yaml:"fontFamily"`
	// UseDefaultPosition applies DefaultPosition to every label.
	UseDefaultPosition bool `json:"use_default_position" yaml:"useDefaultPosition"`
	// DefaultPosition is the single label position.
	DefaultPosition string `json:"default_position" yaml:"defaultPosition"`
	// SentimentPositions are the per-sentiment label positions.
	SentimentPositions SentimentPositions `json:"sentiment_positions" yaml:"sentimentPositions"`
	// ValueFormat is the display unit for label values.
	ValueFormat string `json:"value_format" yaml:"valueFormat"`
	// DecimalPlaces is the number of decimals shown (valid range 0..15).
	DecimalPlaces int `json:"decimal_places" yaml:"decimalPlaces"`
	// HideZeroBlank hides labels for zero or blank values.
	HideZeroBlank bool `json:"hide_zero_blank" yaml:"hideZeroBlank"`
}

// MarginSettings holds the chart margin values, each valid in 0..100.
type MarginSettings struct {
	// Top is the top margin in pixels.
	Top float64 `json:"top" yaml:"top"`
	// Bottom is the bottom margin in pixels.
	Bottom float64 `json:"bottom" yaml:"bottom"`
	// Left is the left margin in pixels.
	Left float64 `json:"left" yaml:"left"`
	// Right is the right margin in pixels.
	Right float64 `json:"right" yaml:"right"`
}
