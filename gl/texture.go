// SPDX-License-Identifier: Unlicense OR MIT

package gl

// TextureTarget is the type of a texture object.
type TextureTarget Enum

const (
	Texture1D                 TextureTarget = TEXTURE_1D
	Texture2D                 TextureTarget = TEXTURE_2D
	Texture3D                 TextureTarget = TEXTURE_3D
	Texture1DArray            TextureTarget = TEXTURE_1D_ARRAY
	Texture2DArray            TextureTarget = TEXTURE_2D_ARRAY
	TextureRectangle          TextureTarget = TEXTURE_RECTANGLE
	TextureCubeMap            TextureTarget = TEXTURE_CUBE_MAP
	TextureCubeMapArray       TextureTarget = TEXTURE_CUBE_MAP_ARRAY
	TextureBuffer             TextureTarget = TEXTURE_BUFFER
	Texture2DMultisample      TextureTarget = TEXTURE_2D_MULTISAMPLE
	Texture2DMultisampleArray TextureTarget = TEXTURE_2D_MULTISAMPLE_ARRAY
)

// SizedInternalFormat is the storage format of a texture.
type SizedInternalFormat Enum

const (
	FormatR8              SizedInternalFormat = R8
	FormatR8SNorm         SizedInternalFormat = R8_SNORM
	FormatR16             SizedInternalFormat = R16
	FormatR16SNorm        SizedInternalFormat = R16_SNORM
	FormatRG8             SizedInternalFormat = RG8
	FormatRG8SNorm        SizedInternalFormat = RG8_SNORM
	FormatRG16            SizedInternalFormat = RG16
	FormatRG16SNorm       SizedInternalFormat = RG16_SNORM
	FormatR3G3B2          SizedInternalFormat = R3_G3_B2
	FormatRGB4            SizedInternalFormat = RGB4
	FormatRGB5            SizedInternalFormat = RGB5
	FormatRGB8            SizedInternalFormat = RGB8
	FormatRGB8SNorm       SizedInternalFormat = RGB8_SNORM
	FormatRGB10           SizedInternalFormat = RGB10
	FormatRGB12           SizedInternalFormat = RGB12
	FormatRGB16SNorm      SizedInternalFormat = RGB16_SNORM
	FormatRGBA2           SizedInternalFormat = RGBA2
	FormatRGBA4           SizedInternalFormat = RGBA4
	FormatRGB5A1          SizedInternalFormat = RGB5_A1
	FormatRGBA8           SizedInternalFormat = RGBA8
	FormatRGBA8SNorm      SizedInternalFormat = RGBA8_SNORM
	FormatRGB10A2         SizedInternalFormat = RGB10_A2
	FormatRGB10A2UI       SizedInternalFormat = RGB10_A2UI
	FormatRGBA12          SizedInternalFormat = RGBA12
	FormatRGBA16          SizedInternalFormat = RGBA16
	FormatSRGB8           SizedInternalFormat = SRGB8
	FormatSRGB8Alpha8     SizedInternalFormat = SRGB8_ALPHA8
	FormatR16F            SizedInternalFormat = R16F
	FormatRG16F           SizedInternalFormat = RG16F
	FormatRGB16F          SizedInternalFormat = RGB16F
	FormatRGBA16F         SizedInternalFormat = RGBA16F
	FormatR32F            SizedInternalFormat = R32F
	FormatRG32F           SizedInternalFormat = RG32F
	FormatRGB32F          SizedInternalFormat = RGB32F
	FormatRGBA32F         SizedInternalFormat = RGBA32F
	FormatR11FG11FB10F    SizedInternalFormat = R11F_G11F_B10F
	FormatRGB9E5          SizedInternalFormat = RGB9_E5
	FormatR8I             SizedInternalFormat = R8I
	FormatR8UI            SizedInternalFormat = R8UI
	FormatR16I            SizedInternalFormat = R16I
	FormatR16UI           SizedInternalFormat = R16UI
	FormatR32I            SizedInternalFormat = R32I
	FormatR32UI           SizedInternalFormat = R32UI
	FormatRG8I            SizedInternalFormat = RG8I
	FormatRG8UI           SizedInternalFormat = RG8UI
	FormatRG16I           SizedInternalFormat = RG16I
	FormatRG16UI          SizedInternalFormat = RG16UI
	FormatRG32I           SizedInternalFormat = RG32I
	FormatRG32UI          SizedInternalFormat = RG32UI
	FormatRGB8I           SizedInternalFormat = RGB8I
	FormatRGB8UI          SizedInternalFormat = RGB8UI
	FormatRGB16I          SizedInternalFormat = RGB16I
	FormatRGB16UI         SizedInternalFormat = RGB16UI
	FormatRGB32I          SizedInternalFormat = RGB32I
	FormatRGB32UI         SizedInternalFormat = RGB32UI
	FormatRGBA8I          SizedInternalFormat = RGBA8I
	FormatRGBA8UI         SizedInternalFormat = RGBA8UI
	FormatRGBA16I         SizedInternalFormat = RGBA16I
	FormatRGBA16UI        SizedInternalFormat = RGBA16UI
	FormatRGBA32I         SizedInternalFormat = RGBA32I
	FormatRGBA32UI        SizedInternalFormat = RGBA32UI
	FormatDepth16         SizedInternalFormat = DEPTH_COMPONENT16
	FormatDepth24         SizedInternalFormat = DEPTH_COMPONENT24
	FormatDepth32F        SizedInternalFormat = DEPTH_COMPONENT32F
	FormatDepth24Stencil8 SizedInternalFormat = DEPTH24_STENCIL8
)

// PixelFormat is the component layout of client pixel data.
type PixelFormat Enum

const (
	PixelRed            PixelFormat = RED
	PixelRG             PixelFormat = RG
	PixelRGB            PixelFormat = RGB
	PixelBGR            PixelFormat = BGR
	PixelRGBA           PixelFormat = RGBA
	PixelBGRA           PixelFormat = BGRA
	PixelRedInteger     PixelFormat = RED_INTEGER
	PixelRGBAInteger    PixelFormat = RGBA_INTEGER
	PixelDepthComponent PixelFormat = DEPTH_COMPONENT
	PixelStencilIndex   PixelFormat = STENCIL_INDEX
)

// PixelType is the component type of client pixel data.
type PixelType Enum

const (
	PixelUnsignedByte          PixelType = UNSIGNED_BYTE
	PixelByte                  PixelType = BYTE
	PixelUnsignedShort         PixelType = UNSIGNED_SHORT
	PixelShort                 PixelType = SHORT
	PixelUnsignedInt           PixelType = UNSIGNED_INT
	PixelInt                   PixelType = INT
	PixelHalfFloat             PixelType = HALF_FLOAT
	PixelFloat                 PixelType = FLOAT
	PixelUnsignedByte332       PixelType = UNSIGNED_BYTE_3_3_2
	PixelUnsignedByte233Rev    PixelType = UNSIGNED_BYTE_2_3_3_REV
	PixelUnsignedShort565      PixelType = UNSIGNED_SHORT_5_6_5
	PixelUnsignedShort565Rev   PixelType = UNSIGNED_SHORT_5_6_5_REV
	PixelUnsignedShort4444     PixelType = UNSIGNED_SHORT_4_4_4_4
	PixelUnsignedShort4444Rev  PixelType = UNSIGNED_SHORT_4_4_4_4_REV
	PixelUnsignedShort5551     PixelType = UNSIGNED_SHORT_5_5_5_1
	PixelUnsignedShort1555Rev  PixelType = UNSIGNED_SHORT_1_5_5_5_REV
	PixelUnsignedInt8888       PixelType = UNSIGNED_INT_8_8_8_8
	PixelUnsignedInt8888Rev    PixelType = UNSIGNED_INT_8_8_8_8_REV
	PixelUnsignedInt1010102    PixelType = UNSIGNED_INT_10_10_10_2
	PixelUnsignedInt2101010Rev PixelType = UNSIGNED_INT_2_10_10_10_REV
)

// CreateTexture creates a texture object of the given target.
func CreateTexture(f Functions, target TextureTarget) (Texture, error) {
	t := f.CreateTexture(Enum(target))
	if t.IsZero() {
		return Texture{}, failure(f, "CreateTextures")
	}
	return t, nil
}

func (t Texture) Delete(f Functions) {
	f.DeleteTexture(t)
}

func (t Texture) Is(f Functions) bool {
	return f.IsTexture(t)
}

// SetStorage2D allocates immutable storage for all levels of a 2D or 1D
// array texture.
func (t Texture) SetStorage2D(f Functions, levels int, format SizedInternalFormat, width, height int) {
	f.TextureStorage2D(t, levels, Enum(format), width, height)
}

// SetStorage3D allocates immutable storage for all levels of a 3D, 2D
// array or cube map array texture.
func (t Texture) SetStorage3D(f Functions, levels int, format SizedInternalFormat, width, height, depth int) {
	f.TextureStorage3D(t, levels, Enum(format), width, height, depth)
}

// UpdateImage2D replaces a rectangle of one level with client pixels.
func (t Texture) UpdateImage2D(f Functions, level, x, y, width, height int, format PixelFormat, ty PixelType, pixels []byte) {
	f.TextureSubImage2D(t, level, x, y, width, height, Enum(format), Enum(ty), pixels)
}

func (t Texture) GenerateMipmap(f Functions) {
	f.GenerateTextureMipmap(t)
}

// BindUnit binds t to a texture unit.
func (t Texture) BindUnit(f Functions, unit int) {
	f.BindTextureUnit(unit, t)
}

// BindTextureUnit binds t to unit. A zero t unbinds the unit.
func BindTextureUnit(f Functions, unit int, t Texture) {
	f.BindTextureUnit(unit, t)
}

func (t Texture) SetParameter(f Functions, pname Enum, value int) {
	f.TextureParameteri(t, pname, value)
}

// LevelParameter queries a per-level parameter such as TEXTURE_WIDTH.
func (t Texture) LevelParameter(f Functions, level int, pname Enum) int {
	return f.GetTextureLevelParameteri(t, level, pname)
}

func (t Texture) SetLabel(f Functions, label string) {
	f.ObjectLabel(TEXTURE, t.V, label)
}
