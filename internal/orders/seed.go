package orders

// Default returns the built-in seed orders. Each call returns a fresh slice.
func Default() []Order {
	return []Order{
		{User: "Aarav", Shipper: "BlueDart", Weight: NumberOf(12), Cost: NumberOf(450), Source: "Mumbai", Destination: "Pune", Status: StatusDelivered},
		{User: "Diya", Shipper: "DTDC", Weight: NumberOf(3.5), Cost: NumberOf(120), Source: "Delhi", Destination: "Jaipur", Status: StatusOutForDelivery},
		{User: "Kabir", Shipper: "Delhivery", Weight: NumberOf(25), Cost: NumberOf(980), Source: "Bengaluru", Destination: "Chennai", Status: StatusPending},
		{User: "Meera", Shipper: "Ecom Express", Weight: NumberOf(1.2), Cost: NumberOf(60), Source: "Kolkata", Destination: "Bhubaneswar", Status: StatusDelivered},
		{User: "Rohan", Shipper: "BlueDart", Weight: NumberOf(8), Cost: NumberOf(310), Source: "Hyderabad", Destination: "Vijayawada", Status: StatusOutForDelivery},
		{User: "Saanvi", Shipper: "India Post", Weight: NumberOf(0.5), Cost: NumberOf(35), Source: "Chennai", Destination: "Madurai", Status: StatusPending},
		{User: "Vihaan", Shipper: "Delhivery", Weight: NumberOf(40), Cost: NumberOf(1500), Source: "Ahmedabad", Destination: "Surat", Status: StatusDelivered},
		{User: "Ananya", Shipper: "DTDC", Weight: NumberOf(6.75), Cost: NumberOf(275), Source: "Pune", Destination: "Nagpur", Status: StatusPending},
		{User: "Arjun", Shipper: "XpressBees", Weight: NumberOf(15), Cost: NumberOf(560), Source: "Lucknow", Destination: "Kanpur", Status: StatusOutForDelivery},
		{User: "Ishaan", Shipper: "India Post", Weight: NumberOf(2), Cost: NumberOf(90), Source: "Jaipur", Destination: "Udaipur", Status: StatusDelivered},
		{User: "Myra", Shipper: "Ecom Express", Weight: NumberOf(18.4), Cost: NumberOf(640), Source: "Kochi", Destination: "Thiruvananthapuram", Status: StatusPending},
		{User: "Reyansh", Shipper: "XpressBees", Weight: NumberOf(9.9), Cost: NumberOf(410), Source: "Indore", Destination: "Bhopal", Status: StatusDelivered},
		{User: "Aadhya", Shipper: "BlueDart", Weight: NumberOf(4), Cost: NumberOf(150), Source: "Chandigarh", Destination: "Amritsar", Status: StatusOutForDelivery},
	}
}
