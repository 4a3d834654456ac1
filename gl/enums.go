// SPDX-License-Identifier: Unlicense OR MIT

package gl

type (
	Attrib uint
	Enum   uint
)

const (
	ACTIVE_ATOMIC_COUNTER_BUFFERS         = 0x92D9
	ACTIVE_ATTRIBUTES                     = 0x8B89
	ACTIVE_ATTRIBUTE_MAX_LENGTH           = 0x8B8A
	ACTIVE_RESOURCES                      = 0x92F5
	ACTIVE_UNIFORMS                       = 0x8B86
	ACTIVE_UNIFORM_BLOCKS                 = 0x8A36
	ACTIVE_UNIFORM_BLOCK_MAX_NAME_LENGTH  = 0x8A35
	ACTIVE_UNIFORM_MAX_LENGTH             = 0x8B87
	ALREADY_SIGNALED                      = 0x911A
	ARRAY_BUFFER                          = 0x8892
	ARRAY_SIZE                            = 0x92FB
	ATOMIC_COUNTER_BUFFER                 = 0x92C0
	ATTACHED_SHADERS                      = 0x8B85
	BGR                                   = 0x80E0
	BGRA                                  = 0x80E1
	BLOCK_INDEX                           = 0x92FD
	BUFFER                                = 0x82E0
	BUFFER_ACCESS                         = 0x88BB
	BUFFER_ACCESS_FLAGS                   = 0x911F
	BUFFER_BINDING                        = 0x9302
	BUFFER_DATA_SIZE                      = 0x9303
	BUFFER_IMMUTABLE_STORAGE              = 0x821F
	BUFFER_MAPPED                         = 0x88BC
	BUFFER_MAP_LENGTH                     = 0x9120
	BUFFER_MAP_OFFSET                     = 0x9121
	BUFFER_SIZE                           = 0x8764
	BUFFER_STORAGE_FLAGS                  = 0x8220
	BUFFER_USAGE                          = 0x8765
	BUFFER_VARIABLE                       = 0x92E5
	BYTE                                  = 0x1400
	CLAMP_TO_EDGE                         = 0x812F
	CLIENT_STORAGE_BIT                    = 0x0200
	COMPILE_STATUS                        = 0x8B81
	COMPUTE_SHADER                        = 0x91B9
	COMPUTE_SUBROUTINE                    = 0x92ED
	COMPUTE_SUBROUTINE_UNIFORM            = 0x92F3
	COMPUTE_WORK_GROUP_SIZE               = 0x8267
	CONDITION_SATISFIED                   = 0x911C
	CONTEXT_CORE_PROFILE_BIT              = 0x00000001
	CONTEXT_FLAGS                         = 0x821E
	CONTEXT_FLAG_DEBUG_BIT                = 0x00000002
	CONTEXT_LOST                          = 0x0507
	CONTEXT_PROFILE_MASK                  = 0x9126
	COPY_READ_BUFFER                      = 0x8F36
	COPY_WRITE_BUFFER                     = 0x8F37
	DEBUG_OUTPUT                          = 0x92E0
	DEBUG_OUTPUT_SYNCHRONOUS              = 0x8242
	DEBUG_SEVERITY_HIGH                   = 0x9146
	DEBUG_SEVERITY_LOW                    = 0x9148
	DEBUG_SEVERITY_MEDIUM                 = 0x9147
	DEBUG_SEVERITY_NOTIFICATION           = 0x826B
	DEBUG_SOURCE_API                      = 0x8246
	DEBUG_SOURCE_APPLICATION              = 0x824A
	DEBUG_SOURCE_OTHER                    = 0x824B
	DEBUG_SOURCE_SHADER_COMPILER          = 0x8248
	DEBUG_SOURCE_THIRD_PARTY              = 0x8249
	DEBUG_SOURCE_WINDOW_SYSTEM            = 0x8247
	DEBUG_TYPE_DEPRECATED_BEHAVIOR        = 0x824D
	DEBUG_TYPE_ERROR                      = 0x824C
	DEBUG_TYPE_MARKER                     = 0x8268
	DEBUG_TYPE_OTHER                      = 0x8251
	DEBUG_TYPE_PERFORMANCE                = 0x8250
	DEBUG_TYPE_POP_GROUP                  = 0x826A
	DEBUG_TYPE_PORTABILITY                = 0x824F
	DEBUG_TYPE_PUSH_GROUP                 = 0x8269
	DEBUG_TYPE_UNDEFINED_BEHAVIOR         = 0x824E
	DELETE_STATUS                         = 0x8B80
	DEPTH24_STENCIL8                      = 0x88F0
	DEPTH_COMPONENT                       = 0x1902
	DEPTH_COMPONENT16                     = 0x81A5
	DEPTH_COMPONENT24                     = 0x81A6
	DEPTH_COMPONENT32F                    = 0x8CAC
	DISPATCH_INDIRECT_BUFFER              = 0x90EE
	DOUBLE                                = 0x140A
	DRAW_INDIRECT_BUFFER                  = 0x8F3F
	DYNAMIC_COPY                          = 0x88EA
	DYNAMIC_DRAW                          = 0x88E8
	DYNAMIC_READ                          = 0x88E9
	DYNAMIC_STORAGE_BIT                   = 0x0100
	ELEMENT_ARRAY_BUFFER                  = 0x8893
	EXTENSIONS                            = 0x1F03
	FALSE                                 = 0
	FIXED                                 = 0x140C
	FLOAT                                 = 0x1406
	FRAGMENT_SHADER                       = 0x8B30
	FRAGMENT_SUBROUTINE                   = 0x92EC
	FRAGMENT_SUBROUTINE_UNIFORM           = 0x92F2
	GEOMETRY_INPUT_TYPE                   = 0x8917
	GEOMETRY_OUTPUT_TYPE                  = 0x8918
	GEOMETRY_SHADER                       = 0x8DD9
	GEOMETRY_SUBROUTINE                   = 0x92EB
	GEOMETRY_SUBROUTINE_UNIFORM           = 0x92F1
	GEOMETRY_VERTICES_OUT                 = 0x8916
	HALF_FLOAT                            = 0x140B
	INFO_LOG_LENGTH                       = 0x8B84
	INT                                   = 0x1404
	INT_2_10_10_10_REV                    = 0x8D9F
	INVALID_ENUM                          = 0x0500
	INVALID_FRAMEBUFFER_OPERATION         = 0x0506
	INVALID_INDEX                         = 0xFFFFFFFF
	INVALID_OPERATION                     = 0x0502
	INVALID_VALUE                         = 0x0501
	LINEAR                                = 0x2601
	LINEAR_MIPMAP_LINEAR                  = 0x2703
	LINK_STATUS                           = 0x8B82
	LOCATION                              = 0x930E
	LOCATION_INDEX                        = 0x930F
	MAJOR_VERSION                         = 0x821B
	MAP_COHERENT_BIT                      = 0x0080
	MAP_FLUSH_EXPLICIT_BIT                = 0x0010
	MAP_INVALIDATE_BUFFER_BIT             = 0x0008
	MAP_INVALIDATE_RANGE_BIT              = 0x0004
	MAP_PERSISTENT_BIT                    = 0x0040
	MAP_READ_BIT                          = 0x0001
	MAP_UNSYNCHRONIZED_BIT                = 0x0020
	MAP_WRITE_BIT                         = 0x0002
	MAX_3D_TEXTURE_SIZE                   = 0x8073
	MAX_COMBINED_TEXTURE_IMAGE_UNITS      = 0x8B4D
	MAX_LABEL_LENGTH                      = 0x82E8
	MAX_NAME_LENGTH                       = 0x92F6
	MAX_NUM_ACTIVE_VARIABLES              = 0x92F7
	MAX_SHADER_STORAGE_BUFFER_BINDINGS    = 0x90DD
	MAX_TEXTURE_SIZE                      = 0x0D33
	MAX_UNIFORM_BLOCK_SIZE                = 0x8A30
	MAX_UNIFORM_BUFFER_BINDINGS           = 0x8A2F
	MAX_VERTEX_ATTRIBS                    = 0x8869
	MINOR_VERSION                         = 0x821C
	NAME_LENGTH                           = 0x92F9
	NEAREST                               = 0x2600
	NO_ERROR                              = 0x0
	NUM_EXTENSIONS                        = 0x821D
	OFFSET                                = 0x92FC
	OUT_OF_MEMORY                         = 0x0505
	PIXEL_PACK_BUFFER                     = 0x88EB
	PIXEL_UNPACK_BUFFER                   = 0x88EC
	PROGRAM                               = 0x82E2
	PROGRAM_BINARY_LENGTH                 = 0x8741
	PROGRAM_INPUT                         = 0x92E3
	PROGRAM_OUTPUT                        = 0x92E4
	QUERY_BUFFER                          = 0x9192
	R11F_G11F_B10F                        = 0x8C3A
	R16                                   = 0x822A
	R16F                                  = 0x822D
	R16I                                  = 0x8233
	R16UI                                 = 0x8234
	R16_SNORM                             = 0x8F98
	R32F                                  = 0x822E
	R32I                                  = 0x8235
	R32UI                                 = 0x8236
	R3_G3_B2                              = 0x2A10
	R8                                    = 0x8229
	R8I                                   = 0x8231
	R8UI                                  = 0x8232
	R8_SNORM                              = 0x8F94
	READ_ONLY                             = 0x88B8
	READ_WRITE                            = 0x88BA
	RED                                   = 0x1903
	RED_INTEGER                           = 0x8D94
	RENDERER                              = 0x1F01
	REPEAT                                = 0x2901
	RG                                    = 0x8227
	RG16                                  = 0x822C
	RG16F                                 = 0x822F
	RG16I                                 = 0x8239
	RG16UI                                = 0x823A
	RG16_SNORM                            = 0x8F99
	RG32F                                 = 0x8230
	RG32I                                 = 0x823B
	RG32UI                                = 0x823C
	RG8                                   = 0x822B
	RG8I                                  = 0x8237
	RG8UI                                 = 0x8238
	RG8_SNORM                             = 0x8F95
	RGB                                   = 0x1907
	RGB10                                 = 0x8052
	RGB10_A2                              = 0x8059
	RGB10_A2UI                            = 0x906F
	RGB12                                 = 0x8053
	RGB16F                                = 0x881B
	RGB16I                                = 0x8D89
	RGB16UI                               = 0x8D77
	RGB16_SNORM                           = 0x8F9A
	RGB32F                                = 0x8815
	RGB32I                                = 0x8D83
	RGB32UI                               = 0x8D71
	RGB4                                  = 0x804F
	RGB5                                  = 0x8050
	RGB5_A1                               = 0x8057
	RGB8                                  = 0x8051
	RGB8I                                 = 0x8D8F
	RGB8UI                                = 0x8D7D
	RGB8_SNORM                            = 0x8F96
	RGB9_E5                               = 0x8C3D
	RGBA                                  = 0x1908
	RGBA12                                = 0x805A
	RGBA16                                = 0x805B
	RGBA16F                               = 0x881A
	RGBA16I                               = 0x8D88
	RGBA16UI                              = 0x8D76
	RGBA2                                 = 0x8055
	RGBA32F                               = 0x8814
	RGBA32I                               = 0x8D82
	RGBA32UI                              = 0x8D70
	RGBA4                                 = 0x8056
	RGBA8                                 = 0x8058
	RGBA8I                                = 0x8D8E
	RGBA8UI                               = 0x8D7C
	RGBA8_SNORM                           = 0x8F97
	RGBA_INTEGER                          = 0x8D99
	SHADER                                = 0x82E1
	SHADER_BINARY_FORMAT_SPIR_V           = 0x9551
	SHADER_SOURCE_LENGTH                  = 0x8B88
	SHADER_STORAGE_BLOCK                  = 0x92E6
	SHADER_STORAGE_BUFFER                 = 0x90D2
	SHADER_TYPE                           = 0x8B4F
	SHADING_LANGUAGE_VERSION              = 0x8B8C
	SHORT                                 = 0x1402
	SPIR_V_BINARY                         = 0x9552
	SRGB8                                 = 0x8C41
	SRGB8_ALPHA8                          = 0x8C43
	STACK_OVERFLOW                        = 0x0503
	STACK_UNDERFLOW                       = 0x0504
	STATIC_COPY                           = 0x88E6
	STATIC_DRAW                           = 0x88E4
	STATIC_READ                           = 0x88E5
	STENCIL_INDEX                         = 0x1901
	STREAM_COPY                           = 0x88E2
	STREAM_DRAW                           = 0x88E0
	STREAM_READ                           = 0x88E1
	SYNC_FLUSH_COMMANDS_BIT               = 0x0001
	SYNC_GPU_COMMANDS_COMPLETE            = 0x9117
	TESS_CONTROL_SHADER                   = 0x8E88
	TESS_CONTROL_SUBROUTINE               = 0x92E9
	TESS_CONTROL_SUBROUTINE_UNIFORM       = 0x92EF
	TESS_EVALUATION_SHADER                = 0x8E87
	TESS_EVALUATION_SUBROUTINE            = 0x92EA
	TESS_EVALUATION_SUBROUTINE_UNIFORM    = 0x92F0
	TEXTURE                               = 0x1702
	TEXTURE_1D                            = 0x0DE0
	TEXTURE_1D_ARRAY                      = 0x8C18
	TEXTURE_2D                            = 0x0DE1
	TEXTURE_2D_ARRAY                      = 0x8C1A
	TEXTURE_2D_MULTISAMPLE                = 0x9100
	TEXTURE_2D_MULTISAMPLE_ARRAY          = 0x9102
	TEXTURE_3D                            = 0x806F
	TEXTURE_BASE_LEVEL                    = 0x813C
	TEXTURE_BUFFER                        = 0x8C2A
	TEXTURE_CUBE_MAP                      = 0x8513
	TEXTURE_CUBE_MAP_ARRAY                = 0x9009
	TEXTURE_DEPTH                         = 0x8071
	TEXTURE_HEIGHT                        = 0x1001
	TEXTURE_INTERNAL_FORMAT               = 0x1003
	TEXTURE_MAG_FILTER                    = 0x2800
	TEXTURE_MAX_LEVEL                     = 0x813D
	TEXTURE_MIN_FILTER                    = 0x2801
	TEXTURE_RECTANGLE                     = 0x84F5
	TEXTURE_WIDTH                         = 0x1000
	TEXTURE_WRAP_R                        = 0x8072
	TEXTURE_WRAP_S                        = 0x2802
	TEXTURE_WRAP_T                        = 0x2803
	TIMEOUT_EXPIRED                       = 0x911B
	TIMEOUT_IGNORED                       = 0xFFFFFFFFFFFFFFFF
	TRANSFORM_FEEDBACK_BUFFER             = 0x8C8E
	TRANSFORM_FEEDBACK_BUFFER_MODE        = 0x8C7F
	TRANSFORM_FEEDBACK_VARYING            = 0x92F4
	TRANSFORM_FEEDBACK_VARYINGS           = 0x8C83
	TRANSFORM_FEEDBACK_VARYING_MAX_LENGTH = 0x8C76
	TRUE                                  = 1
	TYPE                                  = 0x92FA
	UNIFORM                               = 0x92E1
	UNIFORM_BLOCK                         = 0x92E2
	UNIFORM_BUFFER                        = 0x8A11
	UNSIGNED_BYTE                         = 0x1401
	UNSIGNED_BYTE_2_3_3_REV               = 0x8362
	UNSIGNED_BYTE_3_3_2                   = 0x8032
	UNSIGNED_INT                          = 0x1405
	UNSIGNED_INT_10F_11F_11F_REV          = 0x8C3B
	UNSIGNED_INT_10_10_10_2               = 0x8036
	UNSIGNED_INT_2_10_10_10_REV           = 0x8368
	UNSIGNED_INT_8_8_8_8                  = 0x8035
	UNSIGNED_INT_8_8_8_8_REV              = 0x8367
	UNSIGNED_SHORT                        = 0x1403
	UNSIGNED_SHORT_1_5_5_5_REV            = 0x8366
	UNSIGNED_SHORT_4_4_4_4                = 0x8033
	UNSIGNED_SHORT_4_4_4_4_REV            = 0x8365
	UNSIGNED_SHORT_5_5_5_1                = 0x8034
	UNSIGNED_SHORT_5_6_5                  = 0x8363
	UNSIGNED_SHORT_5_6_5_REV              = 0x8364
	VALIDATE_STATUS                       = 0x8B83
	VENDOR                                = 0x1F00
	VERSION                               = 0x1F02
	VERTEX_ARRAY                          = 0x8074
	VERTEX_SHADER                         = 0x8B31
	VERTEX_SUBROUTINE                     = 0x92E8
	VERTEX_SUBROUTINE_UNIFORM             = 0x92EE
	WAIT_FAILED                           = 0x911D
	WRITE_ONLY                            = 0x88B9
)
