package asset

// DefaultCatalogConfig returns the built-in object and nail catalog TOML
// Objects without base_size use the catalog default
const DefaultCatalogConfig = `

# === Nail categories ===

[[nails]]
id = "common-nail"
name = "Common Nail"

[[nails]]
id = "wood-screw"
name = "Wood Screw"

[[nails]]
id = "finishing-nail"
name = "Finishing Nail"

[[nails]]
id = "roofing-nail"
name = "Roofing Nail"

[[nails]]
id = "masonry-nail"
name = "Masonry Nail"

[[nails]]
id = "railroad-spike"
name = "Railroad Spike"


# === Objects ===

[[objects]]
id = "dashboard"
name = "Dashboard"
nail_type = "masonry-nail"

[[objects]]
id = "key"
name = "Key"
nail_type = "finishing-nail"

[[objects]]
id = "umbrella"
name = "Umbrella"
nail_type = "common-nail"

[[objects]]
id = "target"
name = "Target"
nail_type = "common-nail"

[[objects]]
id = "shop"
name = "Shop"
nail_type = "masonry-nail"

[[objects]]
id = "pencil"
name = "Pencil"
nail_type = "finishing-nail"

[[objects]]
id = "lock"
name = "Lock"
nail_type = "wood-screw"

[[objects]]
id = "martini"
name = "Martini"
nail_type = "finishing-nail"

[[objects]]
id = "map"
name = "Map"
nail_type = "common-nail"

[[objects]]
id = "medal"
name = "Medal"
nail_type = "finishing-nail"

[[objects]]
id = "rocket"
name = "Rocket"
nail_type = "railroad-spike"
base_size = 70

[[objects]]
id = "t-shirt"
name = "T-Shirt"
nail_type = "roofing-nail"

[[objects]]
id = "wallet"
name = "Wallet"
nail_type = "wood-screw"

[[objects]]
id = "wrench"
name = "Wrench"
nail_type = "wood-screw"

[[objects]]
id = "trashcan"
name = "Trash Can"
nail_type = "masonry-nail"

[[objects]]
id = "shorts"
name = "Shorts"
nail_type = "roofing-nail"

[[objects]]
id = "tea"
name = "Tea"
nail_type = "finishing-nail"

[[objects]]
id = "shopping-card"
name = "Shopping Card"
nail_type = "common-nail"

[[objects]]
id = "med-kit"
name = "Med Kit"
nail_type = "wood-screw"

[[objects]]
id = "magnifying-glass"
name = "Magnifying Glass"
nail_type = "finishing-nail"

[[objects]]
id = "wrist-watch"
name = "Wrist Watch"
nail_type = "finishing-nail"

[[objects]]
id = "ring"
name = "Ring"
nail_type = "finishing-nail"
base_size = 50

[[objects]]
id = "slippers"
name = "Slippers"
nail_type = "roofing-nail"

[[objects]]
id = "headset"
name = "Headset"
nail_type = "wood-screw"

[[objects]]
id = "discount-label"
name = "Discount Label"
nail_type = "common-nail"

[[objects]]
id = "lamp"
name = "Lamp"
nail_type = "wood-screw"

[[objects]]
id = "helicopter"
name = "Helicopter"
nail_type = "railroad-spike"
base_size = 70

[[objects]]
id = "car-1"
name = "Car"
nail_type = "railroad-spike"
base_size = 70

[[objects]]
id = "bike"
name = "Bike"
nail_type = "masonry-nail"

[[objects]]
id = "car-2"
name = "Sports Car"
nail_type = "railroad-spike"
base_size = 70

[[objects]]
id = "minibus"
name = "Minibus"
nail_type = "railroad-spike"
base_size = 70

[[objects]]
id = "sun-hat"
name = "Sun Hat"
nail_type = "roofing-nail"

[[objects]]
id = "trilby"
name = "Trilby"
nail_type = "roofing-nail"

[[objects]]
id = "red-shoe"
name = "Red Shoe"
nail_type = "roofing-nail"

[[objects]]
id = "basketball"
name = "Basketball"
nail_type = "common-nail"

[[objects]]
id = "skate"
name = "Skate"
nail_type = "wood-screw"

[[objects]]
id = "arrest"
name = "Handcuffs"
nail_type = "masonry-nail"

[[objects]]
id = "drill"
name = "Drill"
nail_type = "wood-screw"

[[objects]]
id = "chemistry"
name = "Chemistry Set"
nail_type = "finishing-nail"

[[objects]]
id = "globe-map"
name = "Globe"
nail_type = "masonry-nail"

[[objects]]
id = "certificate"
name = "Certificate"
nail_type = "common-nail"

[[objects]]
id = "drug"
name = "Medicine"
nail_type = "finishing-nail"
base_size = 50

[[objects]]
id = "hammer"
name = "Hammer"
nail_type = "railroad-spike"

[[objects]]
id = "dinner-love"
name = "Dinner for Two"
nail_type = "common-nail"

[[objects]]
id = "gift-heart-2"
name = "Gift"
nail_type = "common-nail"

[[objects]]
id = "file-heart"
name = "Love Letter"
nail_type = "common-nail"

[[objects]]
id = "red-snazzy-shorts"
name = "Snazzy Shorts"
nail_type = "roofing-nail"

[[objects]]
id = "gray-tshirt"
name = "Gray T-Shirt"
nail_type = "roofing-nail"

[[objects]]
id = "green-pants"
name = "Green Pants"
nail_type = "roofing-nail"

[[objects]]
id = "lightbulb"
name = "Light Bulb"
nail_type = "finishing-nail"

[[objects]]
id = "calculator"
name = "Calculator"
nail_type = "wood-screw"

[[objects]]
id = "data-trends"
name = "Trend Chart"
nail_type = "common-nail"

[[objects]]
id = "record"
name = "Record"
nail_type = "common-nail"

[[objects]]
id = "data-report"
name = "Report"
nail_type = "common-nail"

[[objects]]
id = "alarm-clock"
name = "Alarm Clock"
nail_type = "wood-screw"

[[objects]]
id = "safe"
name = "Safe"
nail_type = "railroad-spike"
base_size = 70

[[objects]]
id = "credit-cards"
name = "Credit Cards"
nail_type = "finishing-nail"

[[objects]]
id = "washing-machine"
name = "Washing Machine"
nail_type = "masonry-nail"
base_size = 70

[[objects]]
id = "vacuum-cleaner"
name = "Vacuum Cleaner"
nail_type = "masonry-nail"

[[objects]]
id = "beer"
name = "Beer"
nail_type = "finishing-nail"

[[objects]]
id = "air-conditioner"
name = "Air Conditioner"
nail_type = "masonry-nail"

[[objects]]
id = "donut"
name = "Donut"
nail_type = "common-nail"

[[objects]]
id = "drumstick"
name = "Drumstick"
nail_type = "common-nail"

[[objects]]
id = "bread"
name = "Bread"
nail_type = "common-nail"

[[objects]]
id = "cheese"
name = "Cheese"
nail_type = "common-nail"

[[objects]]
id = "hamburger"
name = "Hamburger"
nail_type = "common-nail"

[[objects]]
id = "hot-dog"
name = "Hot Dog"
nail_type = "common-nail"

[[objects]]
id = "pizza"
name = "Pizza"
nail_type = "common-nail"
`
