package svgnames

// AttrID identifies a well-known SVG attribute name.
type AttrID uint16

const (
	AttrUnknown AttrID = iota
	AttrAlignmentBaseline
	AttrBaselineShift
	AttrClip
	AttrClipPath
	AttrClipRule
	AttrClipPathUnits
	AttrColor
	AttrColorInterpolation
	AttrColorInterpolationFilters
	AttrColorProfile
	AttrColorRendering
	AttrCursor
	AttrCx
	AttrCy
	AttrD
	AttrDirection
	AttrDisplay
	AttrDominantBaseline
	AttrDx
	AttrDy
	AttrEnableBackground
	AttrFill
	AttrFillOpacity
	AttrFillRule
	AttrFilter
	AttrFilterUnits
	AttrFloodColor
	AttrFloodOpacity
	AttrFontFamily
	AttrFontSize
	AttrFontSizeAdjust
	AttrFontStretch
	AttrFontStyle
	AttrFontVariant
	AttrFontWeight
	AttrFx
	AttrFy
	AttrGlyphOrientationHorizontal
	AttrGlyphOrientationVertical
	AttrGradientTransform
	AttrGradientUnits
	AttrHeight
	AttrHref
	AttrId
	AttrImageRendering
	AttrKerning
	AttrLetterSpacing
	AttrLightingColor
	AttrMarker
	AttrMarkerEnd
	AttrMarkerMid
	AttrMarkerStart
	AttrMarkerHeight
	AttrMarkerUnits
	AttrMarkerWidth
	AttrMask
	AttrMaskContentUnits
	AttrMaskUnits
	AttrOffset
	AttrOpacity
	AttrOverflow
	AttrPathLength
	AttrPatternContentUnits
	AttrPatternTransform
	AttrPatternUnits
	AttrPointerEvents
	AttrPoints
	AttrPreserveAspectRatio
	AttrPrimitiveUnits
	AttrR
	AttrRefX
	AttrRefY
	AttrRotate
	AttrRx
	AttrRy
	AttrShapeRendering
	AttrSpreadMethod
	AttrStdDeviation
	AttrStopColor
	AttrStopOpacity
	AttrStroke
	AttrStrokeDasharray
	AttrStrokeDashoffset
	AttrStrokeLinecap
	AttrStrokeLinejoin
	AttrStrokeMiterlimit
	AttrStrokeOpacity
	AttrStrokeWidth
	AttrStyle
	AttrSystemLanguage
	AttrTextAnchor
	AttrTextDecoration
	AttrTextRendering
	AttrTransform
	AttrUnicodeBidi
	AttrUnicodeRange
	AttrUnitsPerEm
	AttrViewBox
	AttrVisibility
	AttrWidth
	AttrWordSpacing
	AttrWritingMode
	AttrX
	AttrX1
	AttrX2
	AttrXlinkHref
	AttrXmlLang
	AttrXmlSpace
	AttrXmlns
	AttrY
	AttrY1
	AttrY2
)

var attrNames = []string{
	AttrUnknown:                    "",
	AttrAlignmentBaseline:          "alignment-baseline",
	AttrBaselineShift:              "baseline-shift",
	AttrClip:                       "clip",
	AttrClipPath:                   "clip-path",
	AttrClipRule:                   "clip-rule",
	AttrClipPathUnits:              "clipPathUnits",
	AttrColor:                      "color",
	AttrColorInterpolation:         "color-interpolation",
	AttrColorInterpolationFilters:  "color-interpolation-filters",
	AttrColorProfile:               "color-profile",
	AttrColorRendering:             "color-rendering",
	AttrCursor:                     "cursor",
	AttrCx:                         "cx",
	AttrCy:                         "cy",
	AttrD:                          "d",
	AttrDirection:                  "direction",
	AttrDisplay:                    "display",
	AttrDominantBaseline:           "dominant-baseline",
	AttrDx:                         "dx",
	AttrDy:                         "dy",
	AttrEnableBackground:           "enable-background",
	AttrFill:                       "fill",
	AttrFillOpacity:                "fill-opacity",
	AttrFillRule:                   "fill-rule",
	AttrFilter:                     "filter",
	AttrFilterUnits:                "filterUnits",
	AttrFloodColor:                 "flood-color",
	AttrFloodOpacity:               "flood-opacity",
	AttrFontFamily:                 "font-family",
	AttrFontSize:                   "font-size",
	AttrFontSizeAdjust:             "font-size-adjust",
	AttrFontStretch:                "font-stretch",
	AttrFontStyle:                  "font-style",
	AttrFontVariant:                "font-variant",
	AttrFontWeight:                 "font-weight",
	AttrFx:                         "fx",
	AttrFy:                         "fy",
	AttrGlyphOrientationHorizontal: "glyph-orientation-horizontal",
	AttrGlyphOrientationVertical:   "glyph-orientation-vertical",
	AttrGradientTransform:          "gradientTransform",
	AttrGradientUnits:              "gradientUnits",
	AttrHeight:                     "height",
	AttrHref:                       "href",
	AttrId:                         "id",
	AttrImageRendering:             "image-rendering",
	AttrKerning:                    "kerning",
	AttrLetterSpacing:              "letter-spacing",
	AttrLightingColor:              "lighting-color",
	AttrMarker:                     "marker",
	AttrMarkerEnd:                  "marker-end",
	AttrMarkerMid:                  "marker-mid",
	AttrMarkerStart:                "marker-start",
	AttrMarkerHeight:               "markerHeight",
	AttrMarkerUnits:                "markerUnits",
	AttrMarkerWidth:                "markerWidth",
	AttrMask:                       "mask",
	AttrMaskContentUnits:           "maskContentUnits",
	AttrMaskUnits:                  "maskUnits",
	AttrOffset:                     "offset",
	AttrOpacity:                    "opacity",
	AttrOverflow:                   "overflow",
	AttrPathLength:                 "pathLength",
	AttrPatternContentUnits:        "patternContentUnits",
	AttrPatternTransform:           "patternTransform",
	AttrPatternUnits:               "patternUnits",
	AttrPointerEvents:              "pointer-events",
	AttrPoints:                     "points",
	AttrPreserveAspectRatio:        "preserveAspectRatio",
	AttrPrimitiveUnits:             "primitiveUnits",
	AttrR:                          "r",
	AttrRefX:                       "refX",
	AttrRefY:                       "refY",
	AttrRotate:                     "rotate",
	AttrRx:                         "rx",
	AttrRy:                         "ry",
	AttrShapeRendering:             "shape-rendering",
	AttrSpreadMethod:               "spreadMethod",
	AttrStdDeviation:               "stdDeviation",
	AttrStopColor:                  "stop-color",
	AttrStopOpacity:                "stop-opacity",
	AttrStroke:                     "stroke",
	AttrStrokeDasharray:            "stroke-dasharray",
	AttrStrokeDashoffset:           "stroke-dashoffset",
	AttrStrokeLinecap:              "stroke-linecap",
	AttrStrokeLinejoin:             "stroke-linejoin",
	AttrStrokeMiterlimit:           "stroke-miterlimit",
	AttrStrokeOpacity:              "stroke-opacity",
	AttrStrokeWidth:                "stroke-width",
	AttrStyle:                      "style",
	AttrSystemLanguage:             "systemLanguage",
	AttrTextAnchor:                 "text-anchor",
	AttrTextDecoration:             "text-decoration",
	AttrTextRendering:              "text-rendering",
	AttrTransform:                  "transform",
	AttrUnicodeBidi:                "unicode-bidi",
	AttrUnicodeRange:               "unicode-range",
	AttrUnitsPerEm:                 "units-per-em",
	AttrViewBox:                    "viewBox",
	AttrVisibility:                 "visibility",
	AttrWidth:                      "width",
	AttrWordSpacing:                "word-spacing",
	AttrWritingMode:                "writing-mode",
	AttrX:                          "x",
	AttrX1:                         "x1",
	AttrX2:                         "x2",
	AttrXlinkHref:                  "xlink:href",
	AttrXmlLang:                    "xml:lang",
	AttrXmlSpace:                   "xml:space",
	AttrXmlns:                      "xmlns",
	AttrY:                          "y",
	AttrY1:                         "y1",
	AttrY2:                         "y2",
}

var attrIndex = func() map[string]AttrID {
	m := make(map[string]AttrID, len(attrNames))
	for id, name := range attrNames {
		if name != "" {
			m[name] = AttrID(id)
		}
	}
	return m
}()

// LookupAttr maps an attribute name to its ID. Case-sensitive.
func LookupAttr(name string) (AttrID, bool) {
	id, ok := attrIndex[name]
	return id, ok
}

func (id AttrID) String() string {
	if int(id) < len(attrNames) {
		return attrNames[id]
	}
	return ""
}
