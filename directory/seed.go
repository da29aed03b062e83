package directory

import "nagarsetu-be/models"

// seedLocations is the default reference dataset: major Indian cities with
// their coordinates, tier-1 metros flagged.
var seedLocations = []models.Location{
	{StateName: "Delhi", CityName: "New Delhi", Latitude: 28.6139, Longitude: 77.2090, IsTier1: true},
	{StateName: "Gujarat", CityName: "Ahmedabad", Latitude: 23.0225, Longitude: 72.5714, IsTier1: true},
	{StateName: "Gujarat", CityName: "Surat", Latitude: 21.1702, Longitude: 72.8311, IsTier1: false},
	{StateName: "Gujarat", CityName: "Vadodara", Latitude: 22.3072, Longitude: 73.1812, IsTier1: false},
	{StateName: "Karnataka", CityName: "Bengaluru", Latitude: 12.9716, Longitude: 77.5946, IsTier1: true},
	{StateName: "Karnataka", CityName: "Mysuru", Latitude: 12.2958, Longitude: 76.6394, IsTier1: false},
	{StateName: "Maharashtra", CityName: "Mumbai", Latitude: 19.0760, Longitude: 72.8777, IsTier1: true},
	{StateName: "Maharashtra", CityName: "Nagpur", Latitude: 21.1458, Longitude: 79.0882, IsTier1: false},
	{StateName: "Maharashtra", CityName: "Pune", Latitude: 18.5204, Longitude: 73.8567, IsTier1: true},
	{StateName: "Rajasthan", CityName: "Jaipur", Latitude: 26.9124, Longitude: 75.7873, IsTier1: false},
	{StateName: "Rajasthan", CityName: "Jodhpur", Latitude: 26.2389, Longitude: 73.0243, IsTier1: false},
	{StateName: "Tamil Nadu", CityName: "Chennai", Latitude: 13.0827, Longitude: 80.2707, IsTier1: true},
	{StateName: "Tamil Nadu", CityName: "Coimbatore", Latitude: 11.0168, Longitude: 76.9558, IsTier1: false},
	{StateName: "Telangana", CityName: "Hyderabad", Latitude: 17.3850, Longitude: 78.4867, IsTier1: true},
	{StateName: "Uttar Pradesh", CityName: "Kanpur", Latitude: 26.4499, Longitude: 80.3319, IsTier1: false},
	{StateName: "Uttar Pradesh", CityName: "Lucknow", Latitude: 26.8467, Longitude: 80.9462, IsTier1: false},
	{StateName: "Uttar Pradesh", CityName: "Varanasi", Latitude: 25.3176, Longitude: 82.9739, IsTier1: false},
	{StateName: "West Bengal", CityName: "Kolkata", Latitude: 22.5726, Longitude: 88.3639, IsTier1: true},
}
