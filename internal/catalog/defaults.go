package catalog

import "mbs/inventory/internal/domain"

// Built-in catalog, used whenever a kind is absent from the store or its
// persisted value cannot be parsed. Each call returns a fresh copy.

func defaultCategories() domain.Categories {
	return domain.Categories{
		{ID: "shingles", Name: "Shingles", HasSubcategories: true, Image: "https://i.ibb.co/zTZzG2LM/Shingles.jpg"},
		{ID: "underlayment", Name: "Underlayment", HasSubcategories: false, Image: "https://i.ibb.co/XrPdP74S/Underlayment.png"},
		{ID: "hip-and-ridge", Name: "Hip and Ridge", HasSubcategories: true, Image: "https://i.ibb.co/MDQFXdrc/Hip-Ridge.png"},
		{ID: "ice-and-water", Name: "Ice and Water", HasSubcategories: false, Image: "https://i.ibb.co/hRgJ23bS/Ice-and-Water.jpg"},
		{ID: "drip-edge", Name: "Drip Edge and Gutter Apron", HasSubcategories: false, Image: "https://i.ibb.co/sJqx94Ms/Drip-Edge-Gytter-Apron.jpg"},
		{ID: "ventilation", Name: "Ventilation", HasSubcategories: false, Image: "https://i.ibb.co/RknpXthD/Ventilation.png"},
		{ID: "flashings", Name: "Flashings", HasSubcategories: false, Image: "https://i.ibb.co/dwBYrnWx/Flashings.jpg"},
		{ID: "accessories", Name: "Accessories", HasSubcategories: false, Image: "https://i.ibb.co/XfPtwRWR/Accessories.png"},
		{ID: "nails", Name: "Nails", HasSubcategories: false, Image: "https://i.ibb.co/yBK8zdXf/Nails.png"},
		{ID: "paint-caulking", Name: "Paint and Caulking", HasSubcategories: false, Image: "https://i.ibb.co/RTTVwFwf/Paint-and-Caulking.png"},
		{ID: "valley-metal", Name: "Valley Metal", HasSubcategories: false, Image: "https://i.ibb.co/tTBH0B70/Valley-Metal.jpg"},
	}
}

func defaultBrands() domain.Brands {
	return domain.Brands{
		"shingles": {
			{ID: "certainteed", Name: "CertainTeed", Image: "https://i.ibb.co/Nd2r1YkC/1617238.webp", Logo: "https://i.ibb.co/Nd2r1YkC/1617238.webp"},
			{ID: "atlas", Name: "Atlas", Image: "https://static.wikia.nocookie.net/logopedia/images/0/0e/Atlas_Roofing_Corporation_1982.png", Logo: "https://static.wikia.nocookie.net/logopedia/images/0/0e/Atlas_Roofing_Corporation_1982.png"},
		},
		"hip-and-ridge": {
			{ID: "certainteed", Name: "CertainTeed", Image: "https://i.ibb.co/Nd2r1YkC/1617238.webp", Logo: "https://i.ibb.co/Nd2r1YkC/1617238.webp"},
			{ID: "atlas", Name: "Atlas", Image: "https://static.wikia.nocookie.net/logopedia/images/0/0e/Atlas_Roofing_Corporation_1982.png", Logo: "https://static.wikia.nocookie.net/logopedia/images/0/0e/Atlas_Roofing_Corporation_1982.png"},
		},
	}
}

func defaultProductLines() domain.ProductLines {
	return domain.ProductLines{
		"certainteed": {
			"shingles": {
				{ID: "landmark", Name: "Landmark", Image: "https://i.ibb.co/sphtDW0c/CT-Landmark.png", BasePrice: 125.99, Description: "Premium Architectural Shingles", HasSubProducts: true},
				{ID: "landmark-pro", Name: "Landmark Pro", Image: "https://i.ibb.co/PZdsNRDq/CT-Landmark-PRO.png", BasePrice: 145.99, Description: "Professional Grade Architectural Shingles", HasSubProducts: true},
				{ID: "presidential-shake", Name: "Presidential Shake", Image: "https://i.ibb.co/cXrnhXtx/CT-Northgate.png", BasePrice: 185.99, Description: "Luxury Shake-Style Architectural Shingles", HasSubProducts: true},
			},
			"hip-and-ridge": {
				{ID: "hi-def-pewter", Name: "Hi Def Pewter", Image: "https://i.ibb.co/G4PVSCVM/Hi-Def-Pewter.jpg", StartingPrice: 89.99, HasColors: true},
				{ID: "hip-ridge-p1", Name: "Hip Ridge P1", Image: "https://i.ibb.co/kVrcyq3Z/Hip-Ridge-P1.jpg", StartingPrice: 79.99, HasColors: true},
				{ID: "hip-ridge-p2", Name: "Hip Ridge P2", Image: "https://i.ibb.co/9m2d25BQ/Hip-Ridge-P2.jpg", StartingPrice: 79.99, HasColors: true},
			},
		},
		"atlas": {
			"shingles": {
				{ID: "prolam", Name: "ProLam", Image: "https://i.ibb.co/5W6ktSHb/Atlas-Prolam.png", BasePrice: 115.99, Description: "Architectural Shingles", HasSubProducts: true},
				{ID: "pinnacle", Name: "Pinnacle", Image: "https://i.ibb.co/4R8bmNMD/Atlas-Pinnacale-Pristine.png", BasePrice: 135.99, Description: "Premium Architectural Shingles", HasSubProducts: true},
			},
			"hip-and-ridge": {},
		},
	}
}

func defaultColorVariants() domain.ColorVariants {
	return domain.ColorVariants{
		"certainteed": {
			"landmark": {
				{ID: "black-1", Name: "Black 1", Image: "https://i.ibb.co/27hmxs8m/Black1.jpg", Price: 125.99},
				{ID: "black-2", Name: "Black 2", Image: "https://i.ibb.co/35qyh426/Black2.png", Price: 125.99},
				{ID: "birchwood", Name: "Birchwood", Image: "https://i.ibb.co/RTpzg3zY/birchwood.webp", Price: 125.99},
				{ID: "burnt-sienna", Name: "Burnt Sienna", Image: "https://i.ibb.co/XZ45LDBG/burnt-sienna.webp", Price: 125.99},
				{ID: "cottage-red", Name: "Cottage Red", Image: "https://i.ibb.co/mrwbvCBq/3fee27e615d454dc8259dad2a9a4c60c.webp", Price: 125.99},
				{ID: "driftwood", Name: "Driftwood", Image: "https://i.ibb.co/TqF8w9yX/driftwood.webp", Price: 125.99},
				{ID: "weathered-wood", Name: "Weathered Wood", Image: "https://i.ibb.co/G48gvQSd/Weathered-Wood.jpg", Price: 125.99},
				{ID: "georgetown-gray", Name: "Georgetown Gray", Image: "https://i.ibb.co/nNjwXwwY/georgetown-gray.webp", Price: 125.99},
				{ID: "heather-blend", Name: "Heather Blend", Image: "https://i.ibb.co/CKcRH31q/Heather-Blend.jpg", Price: 125.99},
				{ID: "hunter-green", Name: "Hunter Green", Image: "https://i.ibb.co/jkDNgtLb/hunter-green.webp", Price: 125.99},
				{ID: "mission-brown", Name: "Mission Brown", Image: "https://i.ibb.co/9kfMkwRK/mission-brown.webp", Price: 125.99},
			},
			"landmark-pro": {
				{ID: "black-1", Name: "Black 1", Image: "https://i.ibb.co/27hmxs8m/Black1.jpg", Price: 145.99},
				{ID: "black-2", Name: "Black 2", Image: "https://i.ibb.co/35qyh426/Black2.png", Price: 145.99},
				{ID: "birchwood", Name: "Birchwood", Image: "https://i.ibb.co/RTpzg3zY/birchwood.webp", Price: 145.99},
				{ID: "burnt-sienna", Name: "Burnt Sienna", Image: "https://i.ibb.co/XZ45LDBG/burnt-sienna.webp", Price: 145.99},
				{ID: "cottage-red", Name: "Cottage Red", Image: "https://i.ibb.co/mrwbvCBq/3fee27e615d454dc8259dad2a9a4c60c.webp", Price: 145.99},
				{ID: "driftwood", Name: "Driftwood", Image: "https://i.ibb.co/TqF8w9yX/driftwood.webp", Price: 145.99},
				{ID: "weathered-wood", Name: "Weathered Wood", Image: "https://i.ibb.co/G48gvQSd/Weathered-Wood.jpg", Price: 145.99},
				{ID: "georgetown-gray", Name: "Georgetown Gray", Image: "https://i.ibb.co/nNjwXwwY/georgetown-gray.webp", Price: 145.99},
				{ID: "heather-blend", Name: "Heather Blend", Image: "https://i.ibb.co/CKcRH31q/Heather-Blend.jpg", Price: 145.99},
				{ID: "hunter-green", Name: "Hunter Green", Image: "https://i.ibb.co/jkDNgtLb/hunter-green.webp", Price: 145.99},
				{ID: "mission-brown", Name: "Mission Brown", Image: "https://i.ibb.co/9kfMkwRK/mission-brown.webp", Price: 145.99},
			},
			"presidential-shake": {
				{ID: "black-1", Name: "Black 1", Image: "https://i.ibb.co/27hmxs8m/Black1.jpg", Price: 185.99},
				{ID: "black-2", Name: "Black 2", Image: "https://i.ibb.co/35qyh426/Black2.png", Price: 185.99},
				{ID: "birchwood", Name: "Birchwood", Image: "https://i.ibb.co/RTpzg3zY/birchwood.webp", Price: 185.99},
				{ID: "burnt-sienna", Name: "Burnt Sienna", Image: "https://i.ibb.co/XZ45LDBG/burnt-sienna.webp", Price: 185.99},
				{ID: "cottage-red", Name: "Cottage Red", Image: "https://i.ibb.co/mrwbvCBq/3fee27e615d454dc8259dad2a9a4c60c.webp", Price: 185.99},
				{ID: "driftwood", Name: "Driftwood", Image: "https://i.ibb.co/TqF8w9yX/driftwood.webp", Price: 185.99},
				{ID: "weathered-wood", Name: "Weathered Wood", Image: "https://i.ibb.co/G48gvQSd/Weathered-Wood.jpg", Price: 185.99},
				{ID: "georgetown-gray", Name: "Georgetown Gray", Image: "https://i.ibb.co/nNjwXwwY/georgetown-gray.webp", Price: 185.99},
				{ID: "heather-blend", Name: "Heather Blend", Image: "https://i.ibb.co/CKcRH31q/Heather-Blend.jpg", Price: 185.99},
				{ID: "hunter-green", Name: "Hunter Green", Image: "https://i.ibb.co/jkDNgtLb/hunter-green.webp", Price: 185.99},
				{ID: "mission-brown", Name: "Mission Brown", Image: "https://i.ibb.co/9kfMkwRK/mission-brown.webp", Price: 185.99},
			},
		},
		"atlas": {
			"prolam": {
				{ID: "black", Name: "Black", Image: "https://i.ibb.co/27hmxs8m/Black1.jpg", Price: 115.99},
				{ID: "brown", Name: "Brown", Image: "https://i.ibb.co/9kfMkwRK/mission-brown.webp", Price: 115.99},
				{ID: "gray", Name: "Gray", Image: "https://i.ibb.co/nNjwXwwY/georgetown-gray.webp", Price: 115.99},
				{ID: "tan", Name: "Tan", Image: "https://i.ibb.co/TqF8w9yX/driftwood.webp", Price: 115.99},
				{ID: "green", Name: "Green", Image: "https://i.ibb.co/jkDNgtLb/hunter-green.webp", Price: 115.99},
				{ID: "red", Name: "Red", Image: "https://i.ibb.co/mrwbvCBq/3fee27e615d454dc8259dad2a9a4c60c.webp", Price: 115.99},
			},
			"pinnacle": {
				{ID: "black", Name: "Black", Image: "https://i.ibb.co/35qyh426/Black2.png", Price: 135.99},
				{ID: "brown", Name: "Brown", Image: "https://i.ibb.co/XZ45LDBG/burnt-sienna.webp", Price: 135.99},
				{ID: "gray", Name: "Gray", Image: "https://i.ibb.co/nNjwXwwY/georgetown-gray.webp", Price: 135.99},
				{ID: "tan", Name: "Tan", Image: "https://i.ibb.co/RTpzg3zY/birchwood.webp", Price: 135.99},
				{ID: "green", Name: "Green", Image: "https://i.ibb.co/jkDNgtLb/hunter-green.webp", Price: 135.99},
				{ID: "red", Name: "Red", Image: "https://i.ibb.co/mrwbvCBq/3fee27e615d454dc8259dad2a9a4c60c.webp", Price: 135.99},
			},
		},
	}
}

func defaultSwatches() domain.Swatches {
	return domain.Swatches{
		"hi-def-pewter": {
			{ID: "pewter", Name: "Pewter", Hex: "#696969", Price: 89.99, Stock: 150},
			{ID: "charcoal-black", Name: "Charcoal Black", Hex: "#2C2C2C", Price: 89.99, Stock: 125},
			{ID: "weathered-wood", Name: "Weathered Wood", Hex: "#8B7355", Price: 89.99, Stock: 100},
		},
		"hip-ridge-p1": {
			{ID: "charcoal-black", Name: "Charcoal Black", Hex: "#2C2C2C", Price: 79.99, Stock: 175},
			{ID: "weathered-wood", Name: "Weathered Wood", Hex: "#8B7355", Price: 79.99, Stock: 150},
			{ID: "colonial-slate", Name: "Colonial Slate", Hex: "#4A5568", Price: 79.99, Stock: 125},
		},
		"hip-ridge-p2": {
			{ID: "charcoal-black", Name: "Charcoal Black", Hex: "#2C2C2C", Price: 79.99, Stock: 165},
			{ID: "weathered-wood", Name: "Weathered Wood", Hex: "#8B7355", Price: 79.99, Stock: 140},
			{ID: "burnt-sienna", Name: "Burnt Sienna", Hex: "#8B4513", Price: 79.99, Stock: 115},
		},
		"prolam": {
			{ID: "black", Name: "Black", Hex: "#2C2C2C", Price: 115.99, Stock: 320, Image: "https://i.ibb.co/27hmxs8m/Black1.jpg"},
			{ID: "brown", Name: "Brown", Hex: "#8B4513", Price: 115.99, Stock: 285, Image: "https://i.ibb.co/9kfMkwRK/mission-brown.webp"},
			{ID: "gray", Name: "Gray", Hex: "#708090", Price: 115.99, Stock: 205, Image: "https://i.ibb.co/nNjwXwwY/georgetown-gray.webp"},
			{ID: "tan", Name: "Tan", Hex: "#D2B48C", Price: 115.99, Stock: 165, Image: "https://i.ibb.co/TqF8w9yX/driftwood.webp"},
			{ID: "green", Name: "Green", Hex: "#228B22", Price: 115.99, Stock: 190, Image: "https://i.ibb.co/jkDNgtLb/hunter-green.webp"},
			{ID: "red", Name: "Red", Hex: "#B22222", Price: 115.99, Stock: 145, Image: "https://i.ibb.co/mrwbvCBq/3fee27e615d454dc8259dad2a9a4c60c.webp"},
		},
		"pinnacle": {
			{ID: "black", Name: "Black", Hex: "#2C2C2C", Price: 135.99, Stock: 180, Image: "https://i.ibb.co/35qyh426/Black2.png"},
			{ID: "brown", Name: "Brown", Hex: "#8B4513", Price: 135.99, Stock: 145, Image: "https://i.ibb.co/XZ45LDBG/burnt-sienna.webp"},
			{ID: "gray", Name: "Gray", Hex: "#708090", Price: 135.99, Stock: 125, Image: "https://i.ibb.co/nNjwXwwY/georgetown-gray.webp"},
			{ID: "tan", Name: "Tan", Hex: "#D2B48C", Price: 135.99, Stock: 155, Image: "https://i.ibb.co/RTpzg3zY/birchwood.webp"},
			{ID: "green", Name: "Green", Hex: "#228B22", Price: 135.99, Stock: 135, Image: "https://i.ibb.co/jkDNgtLb/hunter-green.webp"},
			{ID: "red", Name: "Red", Hex: "#B22222", Price: 135.99, Stock: 120, Image: "https://i.ibb.co/mrwbvCBq/3fee27e615d454dc8259dad2a9a4c60c.webp"},
		},
		"storm-master": {
			{ID: "black", Name: "Black", Hex: "#2C2C2C", Price: 149.99, Stock: 95, Image: "https://i.ibb.co/27hmxs8m/Black1.jpg"},
			{ID: "brown", Name: "Brown", Hex: "#8B4513", Price: 149.99, Stock: 75, Image: "https://i.ibb.co/9kfMkwRK/mission-brown.webp"},
			{ID: "gray", Name: "Gray", Hex: "#708090", Price: 149.99, Stock: 85, Image: "https://i.ibb.co/nNjwXwwY/georgetown-gray.webp"},
			{ID: "tan", Name: "Tan", Hex: "#D2B48C", Price: 149.99, Stock: 90, Image: "https://i.ibb.co/G48gvQSd/Weathered-Wood.jpg"},
			{ID: "green", Name: "Green", Hex: "#228B22", Price: 149.99, Stock: 80, Image: "https://i.ibb.co/jkDNgtLb/hunter-green.webp"},
			{ID: "red", Name: "Red", Hex: "#B22222", Price: 149.99, Stock: 70, Image: "https://i.ibb.co/mrwbvCBq/3fee27e615d454dc8259dad2a9a4c60c.webp"},
		},
	}
}

func defaultDirectProducts() domain.DirectProducts {
	return domain.DirectProducts{
		"underlayment": {
			{ID: "15lb-felt", Name: "15lb Felt", Image: "https://i.ibb.co/3mxnyrPz/15lb-Felt.jpg", Price: 35.99, Stock: 250, HasOptions: false},
			{ID: "30lb-felt", Name: "30lb Felt", Image: "https://i.ibb.co/DftSK6KQ/30lb-Felt.jpg", Price: 45.99, Stock: 200, HasOptions: false},
			{ID: "synthetic-felt-1", Name: "Synthetic Felt 1", Image: "https://i.ibb.co/1Gm4kqgY/Synthetic-Felt-1.jpg", Price: 89.99, Stock: 150, HasOptions: false},
			{ID: "synthetic-felt-2", Name: "Synthetic Felt 2", Image: "https://i.ibb.co/zhpmg5Hy/Synethic-Felt-2.jpg", Price: 95.99, Stock: 125, HasOptions: false},
		},
		"ice-and-water": {
			{ID: "certainteed-winter-guard", Name: "CertainTeed Winter Guard", Image: "https://i.ibb.co/6RZNgRZc/Certainteed-Winter-Guard.jpg", Price: 135.99, Stock: 75, HasOptions: false},
			{ID: "topshield-ice-water", Name: "Topshield Ice and Water", Image: "https://i.ibb.co/YB3HY6Mf/Topshield-Ice-and-Water.png", Price: 185.99, Stock: 45, HasOptions: false},
		},
		"drip-edge": {
			{ID: "drip-edge-black", Name: "Drip Edge - Black", Image: "https://i.ibb.co/9HkBWTBk/Drip-Edge-Black.png", Price: 12.99, Stock: 500, HasOptions: false},
			{ID: "gutter-apron-white", Name: "Gutter Apron - White", Image: "https://i.ibb.co/TMpRwZwh/Gutter-Apron-White.png", Price: 18.99, Stock: 225, HasOptions: false},
		},
		"ventilation": {
			{ID: "box-vent-black", Name: "Box Vent Black", Image: "https://i.ibb.co/LzMxFcGt/Box-Vent-Black.jpg", Price: 35.99, Stock: 150, HasOptions: false},
			{ID: "box-vent-brown", Name: "Box Vent Brown", Image: "https://i.ibb.co/MxMjJNPb/Box-Vent-Brown.png", Price: 35.99, Stock: 125, HasOptions: false},
			{ID: "dryer-vent-12", Name: "Dryer Vent 12 Inch", Image: "https://i.ibb.co/4wMHmPNr/Dryer-Vent-12-inch.jpg", Price: 28.99, Stock: 200, HasOptions: false},
			{ID: "dryer-vent-5", Name: "Dryer Vent 5 Inch", Image: "https://i.ibb.co/mr9q4dhC/Dryver-vent-5-inch.jpg", Price: 18.99, Stock: 275, HasOptions: false},
			{ID: "louver-vent", Name: "Louver Vent", Image: "https://i.ibb.co/V00ybsb6/Louver-Vent.png", Price: 45.99, Stock: 95, HasOptions: false},
			{ID: "ridge-vent-4ft", Name: "Ridge Vent (4ft)", Image: "https://i.ibb.co/0jFPRJgv/Ridge-Vent-4ft.png", Price: 22.99, Stock: 185, HasOptions: false},
			{ID: "ridge-vent-rolled", Name: "Ridge Vent (Rolled)", Image: "https://i.ibb.co/hQbzks5/Ridge-Vent-Rolled.png", Price: 89.99, Stock: 65, HasOptions: false},
		},
		"flashings": {
			{ID: "4x4-10ft-roof-to-wall", Name: "4x4 10ft Roof to Wall", Image: "https://i.ibb.co/qFh5H3F8/4x4-10ft-Roof-To-Wall.png", Price: 28.99, Stock: 175, HasOptions: false},
			{ID: "4x4x-10ft-roof-to-wall-white", Name: "4x4x 10ft Roof to Wall White", Image: "https://i.ibb.co/My0rbSLs/4x4x-10ft-Roof-To-Wall-White.png", Price: 32.99, Stock: 150, HasOptions: false},
			{ID: "black-trim-coil", Name: "Black Trim Coil", Image: "https://i.ibb.co/k2QqjJsB/Black-Trim-Coil.jpg", Price: 125.99, Stock: 85, HasOptions: false},
			{ID: "brown-trim-coil", Name: "Brown Trim Coil", Image: "https://i.ibb.co/b5b3mcdq/Brown-Trim-Coil.jpg", Price: 125.99, Stock: 75, HasOptions: false},
			{ID: "roof-to-wall-flashing", Name: "Roof to Wall Flashing", Image: "https://i.ibb.co/PZSGSR2X/Roof-To-Wall-Flashing.jpg", Price: 35.99, Stock: 225, HasOptions: false},
			{ID: "step-flash-black", Name: "Step Flash 4x4x8 Black ALUM", Image: "https://i.ibb.co/Gvd8CNRV/Step-Flash-4x4x8-Black-ALUM.png", Price: 3.99, Stock: 850, HasOptions: false},
			{ID: "step-flash-brown", Name: "Step Flash 4x4x8 Brown ALUM", Image: "https://i.ibb.co/k20yh8tc/Step-Flash-4x4x8-Brown-ALUM.png", Price: 3.99, Stock: 750, HasOptions: false},
			{ID: "step-flash-silver", Name: "Step Flash 4x4x8 Silver GALVANIZED", Image: "https://i.ibb.co/671QpLfh/Step-Flash-4x4x8-Silver-GALVANIZED.png", Price: 2.85, Stock: 1000, HasOptions: false},
		},
		"accessories": {
			{ID: "pipe-boot-alum-black", Name: "Pipe Boot Alum Black", Image: "https://i.ibb.co/rGM2C54v/Pipe-Boot-ALUM-BLACK.png", Price: 18.99, Stock: 225, HasOptions: false},
			{ID: "pipe-boot-alum-silver", Name: "Pipe Boot Alum Silver", Image: "https://i.ibb.co/dws6qVzB/Pipe-Boot-ALUM-SILVER.png", Price: 16.99, Stock: 250, HasOptions: false},
			{ID: "pipe-boot-plastic-black", Name: "Pipe Boot Plastic Black", Image: "https://i.ibb.co/RpXTZZ85/Pipe-Boot-PLASTIC-BLACK.png", Price: 12.99, Stock: 350, HasOptions: false},
		},
		"nails": {
			{ID: "cap-nails", Name: "Cap Nails", Image: "https://i.ibb.co/wZ2TJbsg/Cap-Nails.png", Price: 45.99, Stock: 150, HasOptions: false},
			{ID: "coil-nails", Name: "Coil Nails", Image: "https://i.ibb.co/p65bmLRp/Coil-Nails.png", Price: 89.99, Stock: 125, HasOptions: false},
			{ID: "staples", Name: "Staples", Image: "https://i.ibb.co/zTrX449G/Staples.png", Price: 35.99, Stock: 200, HasOptions: false},
		},
		"paint-caulking": {
			{ID: "black-spray-paint", Name: "Black (Negro) Spray Paint", Image: "https://i.ibb.co/3ypybSsY/Black-Negro-Spray-Paint.png", Price: 12.99, Stock: 250, HasOptions: false},
			{ID: "caulking-black", Name: "Caulking Black", Image: "https://i.ibb.co/gZbYhVwg/Caulking-Black.png", Price: 8.99, Stock: 175, HasOptions: false},
			{ID: "caulking-white", Name: "Caulking White", Image: "https://i.ibb.co/Q3W2C316/Caulking-White.png", Price: 8.99, Stock: 200, HasOptions: false},
			{ID: "weathered-wood-spray-paint", Name: "Weathered Wood (Madera Desgastada) Spray Paint", Image: "https://i.ibb.co/7JnpMKvR/Weathered-Wood-Madera-Desgatrada-Sprau-Paint.png", Price: 12.99, Stock: 150, HasOptions: false},
		},
		"valley-metal": {
			{ID: "smooth-valley-black", Name: "Smooth Valley Metal Black", Image: "https://i.ibb.co/rRq5vxsx/Smooth-Valley-Metal-Black.png", Price: 45.99, Stock: 125, HasOptions: false},
			{ID: "smooth-valley-standard", Name: "Smooth Valley Metal Standard", Image: "https://i.ibb.co/HDMbs8m8/Smooth-Valley-Metal-Standard.png", Price: 35.99, Stock: 150, HasOptions: false},
			{ID: "w-valley-black", Name: "W Valley Metal Black", Image: "https://i.ibb.co/KxgB8KRc/W-Valley-Metal-Black.png", Price: 48.99, Stock: 95, HasOptions: false},
			{ID: "w-valley-standard", Name: "W Valley Metal Standard", Image: "https://i.ibb.co/RGnBrS8r/W-Valley-Metal-Standard.png", Price: 38.99, Stock: 115, HasOptions: false},
		},
	}
}
