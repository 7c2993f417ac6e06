package brush

import "github.com/google/uuid"

// Channel layouts shared by brush families.
const (
	ribbon   = Channels(ChannelPosition | ChannelNormal | ChannelColor | ChannelUV0)
	unlit    = Channels(ChannelPosition | ChannelColor | ChannelUV0)
	particle = Channels(ChannelPosition | ChannelNormal | ChannelColor | ChannelUV0 | ChannelUV1)
)

type trait uint8

const (
	animated trait = 1 << iota
	cameraAware
	singleSided
)

func entry(guid, name, material string, ch Channels, traits trait) Profile {
	return Profile{
		GUID:                uuid.MustParse(guid),
		Name:                name,
		Material:            material,
		Channels:            ch,
		NeedsTime:           traits&animated != 0,
		NeedsCameraPosition: traits&cameraAware != 0,
		DoubleSided:         traits&singleSided == 0,
	}
}

var table = []Profile{
	entry("89d104cd-d012-426b-b5b3-bbaee63ac43c", "Bubbles", "Bubbles", particle, animated|cameraAware),
	entry("700f3aa8-9a7c-2384-8b8a-ea028905dd8c", "CelVinyl", "CelVinyl", unlit, 0),
	entry("0f0ff7b2-a677-45eb-a7d6-0cd7206f4816", "ChromaticWave", "ChromaticWave", unlit, animated),
	entry("1161af82-50cf-47db-9706-0c3576d43c43", "CoarseBristles", "CoarseBristles", ribbon, 0),
	entry("79168f10-6961-464a-8be1-57ed364c5600", "CoarseBristlesSingleSided", "CoarseBristles", ribbon, singleSided),
	entry("1caa6d7d-f015-3f54-3a4b-8b5354d39f81", "Comet", "Comet", unlit, animated),
	entry("c8313697-2563-47fc-832e-290f4c04b901", "DiamondHull", "DiamondHull", ribbon, animated|cameraAware|singleSided),
	entry("4391aaaa-df73-4396-9e33-31e4e4930b27", "Disco", "Disco", ribbon, animated),
	entry("d1d991f2-e7a0-4cf1-b328-f57e915e6260", "DotMarker", "DotMarker", unlit, 0),
	entry("6a1cf9f9-032c-45ec-9b1d-a6680bee30f7", "Dots", "Dots", particle, animated|cameraAware),
	entry("0d3889f3-3ede-470c-8af4-f44813306126", "DoubleTaperedFlat", "DoubleTaperedFlat", ribbon, 0),
	entry("0d3889f3-3ede-470c-8af4-de4813306126", "DoubleTaperedMarker", "DoubleTaperedMarker", unlit, 0),
	entry("d0262945-853c-4481-9cbd-88586bed93cb", "DuctTape", "DuctTape", ribbon, 0),
	entry("3ca16e2f-bdcd-4da2-8631-dcef342f40f1", "DuctTapeSingleSided", "DuctTape", ribbon, singleSided),
	entry("f6e85de3-6dcc-4e7f-87fd-cee8c3d25d51", "Electricity", "Electricity", unlit, animated),
	entry("02ffb866-7fb2-4d15-b761-1012cefb1360", "Embers", "Embers", particle, animated|cameraAware),
	entry("cb92b597-94ca-4255-b017-0e3f42f12f9e", "Fire", "Fire", unlit, animated),
	entry("2d35bcf0-e4d8-452c-97b1-3311be063130", "Flat", "Flat", ribbon, 0),
	entry("55303bc4-c749-4a72-98d9-d23e68e76e18", "FlatDeprecated", "Flat", ribbon, 0),
	entry("280c0a7a-aad8-416c-a7d2-df63d129ca70", "FlatSingleSided", "Flat", ribbon, singleSided),
	entry("cf019139-d41c-4eb0-a1d0-5cf54b0a42f3", "Highlighter", "Highlighter", unlit, 0),
	entry("6a1cf9f9-032c-45ec-9b6e-a6680bee32e9", "HyperGrid", "HyperGrid", particle, animated|cameraAware),
	entry("dce872c2-7b49-4684-b59b-c45387949c5c", "Hypercolor", "Hypercolor", ribbon, animated),
	entry("e8ef32b1-baa8-460a-9c2c-9cf8506794f5", "HypercolorSingleSided", "Hypercolor", ribbon, animated|singleSided),
	entry("2f212815-f4d3-c1a4-681a-feeaf9c6dc37", "Icing", "Icing", ribbon, 0),
	entry("f5c336cf-5108-4b40-ade9-c687504385ab", "Ink", "Ink", ribbon, 0),
	entry("c0012095-3ffd-4040-8ee1-fc180d346eaa", "InkSingleSided", "Ink", ribbon, singleSided),
	entry("4a76a27a-44d8-4bfe-9a8c-713749a499b0", "Leaves", "Leaves", ribbon, 0),
	entry("ea19de07-d0c0-4484-9198-18489a3c1487", "LeavesSingleSided", "Leaves", ribbon, singleSided),
	entry("2241cd32-8ba2-48a5-9ee7-2caef7e9ed62", "Light", "Light", unlit, 0),
	entry("4391aaaa-df81-4396-9e33-31e4e4930b27", "LightWire", "LightWire", ribbon, animated),
	entry("d381e0f5-3def-4a0d-8853-31e9200bcbda", "Lofted", "Lofted", ribbon, 0),
	entry("429ed64a-4e97-4466-84d3-145a861ef684", "Marker", "Marker", unlit, 0),
	entry("79348357-432d-4746-8e29-0e25c112e3aa", "MatteHull", "MatteHull", ribbon, singleSided),
	entry("b2ffef01-eaaa-4ab5-aa64-95a2c4f5dbc6", "NeonPulse", "NeonPulse", ribbon, animated),
	entry("f72ec0e7-a844-4e38-82e3-140c44772699", "OilPaint", "OilPaint", ribbon, 0),
	entry("c515dad7-4393-4681-81ad-162ef052241b", "OilPaintSingleSided", "OilPaint", ribbon, singleSided),
	entry("f1114e2e-eb8d-4fde-915a-6e653b54e9f5", "Paper", "Paper", ribbon, 0),
	entry("759f1ebd-20cd-4720-8d41-234e0da63716", "PaperSingleSided", "Paper", ribbon, singleSided),
	entry("e0abbc80-0f80-e854-4970-8924a0863dcc", "Petal", "Petal", ribbon, 0),
	entry("c33714d1-b2f9-412e-bd50-1884c9d46336", "Plasma", "Plasma", unlit, animated),
	entry("ad1ad437-76e2-450d-a23a-e17f8310b960", "Rainbow", "Rainbow", unlit, animated),
	entry("faaa4d44-fcfb-4177-96be-753ac0421ba3", "ShinyHull", "ShinyHull", ribbon, singleSided),
	entry("70d79cca-b159-4f35-990c-f02193947fe8", "Smoke", "Smoke", particle, animated|cameraAware),
	entry("d902ed8b-d0d1-476c-a8de-878a79e3a34c", "Snow", "Snow", particle, animated|cameraAware),
	entry("accb32f5-4509-454f-93f8-1df3fd31df1b", "SoftHighlighter", "SoftHighlighter", unlit, 0),
	entry("cf7f0059-7aeb-53a4-2b67-c83d863a9ffa", "Spikes", "Spikes", ribbon, 0),
	entry("8dc4a70c-d558-4efd-a5ed-d4e860f40dc3", "Splatter", "Splatter", ribbon, 0),
	entry("7a1c8107-50c5-4b70-9a39-421576d6617e", "SplatterSingleSided", "Splatter", ribbon, singleSided),
	entry("0eb4db27-3f82-408d-b5a1-19ebd7d5b711", "Stars", "Stars", particle, animated|cameraAware),
	entry("44bb800a-fbc3-4592-8426-94ecb05ddec3", "Streamers", "Streamers", unlit, animated),
	entry("0077f88c-d93a-42f3-b59b-b31c50cdb414", "Taffy", "Taffy", ribbon, 0),
	entry("b468c1fb-f254-41ed-8ec9-57030bc5660c", "TaperedFlat", "TaperedFlat", ribbon, 0),
	entry("c8ccb53d-ae13-45ef-8afb-b730d81394eb", "TaperedFlatSingleSided", "TaperedFlat", ribbon, singleSided),
	entry("d90c6ad8-af0f-4b54-b422-e0f92abe1b3c", "TaperedMarker", "TaperedMarker", unlit, 0),
	entry("1a26b8c0-8a07-4f8a-9fac-d2ef36e0cad0", "TaperedMarker_Flat", "TaperedMarker", ribbon, 0),
	entry("75b32cf0-fdd6-4d89-a64b-e2a00b247b0f", "ThickPaint", "ThickPaint", ribbon, 0),
	entry("fdf0326a-c0d1-4fed-b101-9db0ff6d071f", "ThickPaintSingleSided", "ThickPaint", ribbon, singleSided),
	entry("4391385a-df73-4396-9e33-31e4e4930b27", "Toon", "Toon", unlit, 0),
	entry("a8fea537-da7c-4d4b-817f-24f074725d6d", "UnlitHull", "UnlitHull", unlit, singleSided),
	entry("d229d335-c334-495a-a801-660ac8a87360", "VelvetInk", "VelvetInk", unlit, 0),
	entry("10201aa3-ebc2-42d8-84b7-2e63f6eeb8ab", "Waveform", "Waveform", unlit, animated),
	entry("b67c0e81-ce6d-40a8-aeb0-ef036b081aa3", "WetPaint", "WetPaint", ribbon, 0),
	entry("dea67637-cd1a-27e4-c9b1-52f4bbcb84e5", "WetPaintSingleSided", "WetPaint", ribbon, singleSided),
	entry("5347acf0-a8e2-47b6-8346-30c70719d763", "WigglyGraphite", "WigglyGraphite", ribbon, animated),
	entry("e814fef1-97fd-7194-4a2f-50c2bb918be2", "WigglyGraphiteSingleSided", "WigglyGraphite", ribbon, animated|singleSided),
	entry("4391385a-cf83-4396-9e33-31e4e4930b27", "Wire", "Wire", unlit, 0),
}
