// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gl

// Enum is a GL token.
type Enum uint32

const (
	FALSE Enum = 0
	TRUE  Enum = 1

	NO_ERROR                      Enum = 0
	INVALID_ENUM                  Enum = 0x0500
	INVALID_VALUE                 Enum = 0x0501
	INVALID_OPERATION             Enum = 0x0502
	OUT_OF_MEMORY                 Enum = 0x0505
	INVALID_FRAMEBUFFER_OPERATION Enum = 0x0506

	VERTEX_SHADER    Enum = 0x8B31
	FRAGMENT_SHADER  Enum = 0x8B30
	GEOMETRY_SHADER  Enum = 0x8DD9
	COMPILE_STATUS   Enum = 0x8B81
	LINK_STATUS      Enum = 0x8B82
	INFO_LOG_LENGTH  Enum = 0x8B84
	SHADER_TYPE      Enum = 0x8B4F
	DELETE_STATUS    Enum = 0x8B80
	ATTACHED_SHADERS Enum = 0x8B85
	ACTIVE_UNIFORMS  Enum = 0x8B86

	ARRAY_BUFFER                 Enum = 0x8892
	ELEMENT_ARRAY_BUFFER         Enum = 0x8893
	ARRAY_BUFFER_BINDING         Enum = 0x8894
	ELEMENT_ARRAY_BUFFER_BINDING Enum = 0x8895
	BUFFER_SIZE                  Enum = 0x8764
	BUFFER_USAGE                 Enum = 0x8765
	STREAM_DRAW                  Enum = 0x88E0
	STATIC_DRAW                  Enum = 0x88E4
	DYNAMIC_DRAW                 Enum = 0x88E8

	VERTEX_ARRAY_BINDING Enum = 0x85B5

	BYTE           Enum = 0x1400
	UNSIGNED_BYTE  Enum = 0x1401
	SHORT          Enum = 0x1402
	UNSIGNED_SHORT Enum = 0x1403
	INT            Enum = 0x1404
	UNSIGNED_INT   Enum = 0x1405
	FLOAT          Enum = 0x1406
	DOUBLE         Enum = 0x140A

	TEXTURE_2D           Enum = 0x0DE1
	TEXTURE_BINDING_2D   Enum = 0x8069
	TEXTURE0             Enum = 0x84C0
	ACTIVE_TEXTURE       Enum = 0x84E0
	TEXTURE_WRAP_S       Enum = 0x2802
	TEXTURE_WRAP_T       Enum = 0x2803
	TEXTURE_MIN_FILTER   Enum = 0x2801
	TEXTURE_MAG_FILTER   Enum = 0x2800
	REPEAT               Enum = 0x2901
	CLAMP_TO_EDGE        Enum = 0x812F
	NEAREST              Enum = 0x2600
	LINEAR               Enum = 0x2601
	LINEAR_MIPMAP_LINEAR Enum = 0x2703
	UNPACK_ALIGNMENT     Enum = 0x0CF5
	PACK_ALIGNMENT       Enum = 0x0D05
	RED                  Enum = 0x1903
	RG                   Enum = 0x8227
	RGB                  Enum = 0x1907
	RGBA                 Enum = 0x1908
	R8                   Enum = 0x8229
	RG8                  Enum = 0x822B
	RGB8                 Enum = 0x8051
	RGBA8                Enum = 0x8058

	CURRENT_PROGRAM Enum = 0x8B8D

	VENDOR                   Enum = 0x1F00
	RENDERER                 Enum = 0x1F01
	VERSION                  Enum = 0x1F02
	EXTENSIONS               Enum = 0x1F03
	SHADING_LANGUAGE_VERSION Enum = 0x8B8C
	MAJOR_VERSION            Enum = 0x821B
	MINOR_VERSION            Enum = 0x821C
	NUM_EXTENSIONS           Enum = 0x821D
	CONTEXT_FLAGS            Enum = 0x821E
	CONTEXT_PROFILE_MASK     Enum = 0x9126

	CONTEXT_CORE_PROFILE_BIT            Enum = 0x00000001
	CONTEXT_COMPATIBILITY_PROFILE_BIT   Enum = 0x00000002
	CONTEXT_FLAG_FORWARD_COMPATIBLE_BIT Enum = 0x00000001
	CONTEXT_FLAG_DEBUG_BIT              Enum = 0x00000002

	COLOR_BUFFER_BIT Enum = 0x00004000
	DEPTH_BUFFER_BIT Enum = 0x00000100

	POINTS         Enum = 0x0000
	LINES          Enum = 0x0001
	LINE_STRIP     Enum = 0x0003
	TRIANGLES      Enum = 0x0004
	TRIANGLE_STRIP Enum = 0x0005
	TRIANGLE_FAN   Enum = 0x0006
)

var errorNames = map[Enum]string{
	NO_ERROR:                      "NO_ERROR",
	INVALID_ENUM:                  "INVALID_ENUM",
	INVALID_VALUE:                 "INVALID_VALUE",
	INVALID_OPERATION:             "INVALID_OPERATION",
	OUT_OF_MEMORY:                 "OUT_OF_MEMORY",
	INVALID_FRAMEBUFFER_OPERATION: "INVALID_FRAMEBUFFER_OPERATION",
}

// ErrorString returns the name of a GL error code.
func ErrorString(e Enum) string {
	if s, ok := errorNames[e]; ok {
		return s
	}
	return "unknown GL error"
}
