package svgnames

// ElementID identifies a well-known SVG element name.
type ElementID uint16

const (
	ElemUnknown ElementID = iota
	ElemA
	ElemAltGlyph
	ElemAltGlyphDef
	ElemAltGlyphItem
	ElemAnimate
	ElemAnimateColor
	ElemAnimateMotion
	ElemAnimateTransform
	ElemCircle
	ElemClipPath
	ElemColorProfile
	ElemCursor
	ElemDefs
	ElemDesc
	ElemEllipse
	ElemFeBlend
	ElemFeColorMatrix
	ElemFeComponentTransfer
	ElemFeComposite
	ElemFeConvolveMatrix
	ElemFeDiffuseLighting
	ElemFeDisplacementMap
	ElemFeDistantLight
	ElemFeFlood
	ElemFeFuncA
	ElemFeFuncB
	ElemFeFuncG
	ElemFeFuncR
	ElemFeGaussianBlur
	ElemFeImage
	ElemFeMerge
	ElemFeMergeNode
	ElemFeMorphology
	ElemFeOffset
	ElemFePointLight
	ElemFeSpecularLighting
	ElemFeSpotLight
	ElemFeTile
	ElemFeTurbulence
	ElemFilter
	ElemFont
	ElemFontFace
	ElemFontFaceFormat
	ElemFontFaceName
	ElemFontFaceSrc
	ElemFontFaceURI
	ElemForeignObject
	ElemG
	ElemGlyph
	ElemGlyphRef
	ElemHkern
	ElemImage
	ElemLine
	ElemLinearGradient
	ElemMarker
	ElemMask
	ElemMetadata
	ElemMissingGlyph
	ElemMpath
	ElemPath
	ElemPattern
	ElemPolygon
	ElemPolyline
	ElemRadialGradient
	ElemRect
	ElemScript
	ElemSet
	ElemStop
	ElemStyle
	ElemSvg
	ElemSwitch
	ElemSymbol
	ElemText
	ElemTextPath
	ElemTitle
	ElemTref
	ElemTspan
	ElemUse
	ElemView
	ElemVkern
)

var elementNames = []string{
	ElemUnknown:             "",
	ElemA:                   "a",
	ElemAltGlyph:            "altGlyph",
	ElemAltGlyphDef:         "altGlyphDef",
	ElemAltGlyphItem:        "altGlyphItem",
	ElemAnimate:             "animate",
	ElemAnimateColor:        "animateColor",
	ElemAnimateMotion:       "animateMotion",
	ElemAnimateTransform:    "animateTransform",
	ElemCircle:              "circle",
	ElemClipPath:            "clipPath",
	ElemColorProfile:        "color-profile",
	ElemCursor:              "cursor",
	ElemDefs:                "defs",
	ElemDesc:                "desc",
	ElemEllipse:             "ellipse",
	ElemFeBlend:             "feBlend",
	ElemFeColorMatrix:       "feColorMatrix",
	ElemFeComponentTransfer: "feComponentTransfer",
	ElemFeComposite:         "feComposite",
	ElemFeConvolveMatrix:    "feConvolveMatrix",
	ElemFeDiffuseLighting:   "feDiffuseLighting",
	ElemFeDisplacementMap:   "feDisplacementMap",
	ElemFeDistantLight:      "feDistantLight",
	ElemFeFlood:             "feFlood",
	ElemFeFuncA:             "feFuncA",
	ElemFeFuncB:             "feFuncB",
	ElemFeFuncG:             "feFuncG",
	ElemFeFuncR:             "feFuncR",
	ElemFeGaussianBlur:      "feGaussianBlur",
	ElemFeImage:             "feImage",
	ElemFeMerge:             "feMerge",
	ElemFeMergeNode:         "feMergeNode",
	ElemFeMorphology:        "feMorphology",
	ElemFeOffset:            "feOffset",
	ElemFePointLight:        "fePointLight",
	ElemFeSpecularLighting:  "feSpecularLighting",
	ElemFeSpotLight:         "feSpotLight",
	ElemFeTile:              "feTile",
	ElemFeTurbulence:        "feTurbulence",
	ElemFilter:              "filter",
	ElemFont:                "font",
	ElemFontFace:            "font-face",
	ElemFontFaceFormat:      "font-face-format",
	ElemFontFaceName:        "font-face-name",
	ElemFontFaceSrc:         "font-face-src",
	ElemFontFaceURI:         "font-face-uri",
	ElemForeignObject:       "foreignObject",
	ElemG:                   "g",
	ElemGlyph:               "glyph",
	ElemGlyphRef:            "glyphRef",
	ElemHkern:               "hkern",
	ElemImage:               "image",
	ElemLine:                "line",
	ElemLinearGradient:      "linearGradient",
	ElemMarker:              "marker",
	ElemMask:                "mask",
	ElemMetadata:            "metadata",
	ElemMissingGlyph:        "missing-glyph",
	ElemMpath:               "mpath",
	ElemPath:                "path",
	ElemPattern:             "pattern",
	ElemPolygon:             "polygon",
	ElemPolyline:            "polyline",
	ElemRadialGradient:      "radialGradient",
	ElemRect:                "rect",
	ElemScript:              "script",
	ElemSet:                 "set",
	ElemStop:                "stop",
	ElemStyle:               "style",
	ElemSvg:                 "svg",
	ElemSwitch:              "switch",
	ElemSymbol:              "symbol",
	ElemText:                "text",
	ElemTextPath:            "textPath",
	ElemTitle:               "title",
	ElemTref:                "tref",
	ElemTspan:               "tspan",
	ElemUse:                 "use",
	ElemView:                "view",
	ElemVkern:               "vkern",
}

var elementIndex = func() map[string]ElementID {
	m := make(map[string]ElementID, len(elementNames))
	for id, name := range elementNames {
		if name != "" {
			m[name] = ElementID(id)
		}
	}
	return m
}()

// LookupElement maps an element name to its ID. Case-sensitive.
func LookupElement(name string) (ElementID, bool) {
	id, ok := elementIndex[name]
	return id, ok
}

func (id ElementID) String() string {
	if int(id) < len(elementNames) {
		return elementNames[id]
	}
	return ""
}
